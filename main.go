package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"adscout/internal/api"
	"adscout/internal/config"
	"adscout/internal/eventbus"
	"adscout/internal/ui"
	"adscout/internal/ui/services/search"
)

// sessionStats counts search outcomes for the exit log line
type sessionStats struct {
	requested atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	stale     atomic.Int64
}

func main() {
	var (
		configPath string
		apiURL     string
		country    string
		envFile    string
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: "+config.DefaultPath()+")")
	flag.StringVar(&apiURL, "api-url", "", "Base URL of the advertiser search API")
	flag.StringVar(&country, "country", "", "Initial country code")
	flag.StringVar(&envFile, "env", ".env", "Dotenv file to load before reading the environment")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := config.LoadDotEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", envFile, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if country != "" {
		cfg.DefaultCountry = country
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging; the terminal belongs to the UI
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetOutput(os.Stderr)
		log.SetLevel(log.ErrorLevel)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	stats := &sessionStats{}
	subscribeStats(bus, stats)

	client := api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.RequestTimeout.Duration))
	svc := search.NewService(client, bus, cfg.DefaultCountry)

	log.WithFields(log.Fields{
		"api":     client.BaseURL(),
		"country": cfg.DefaultCountry,
		"timeout": cfg.RequestTimeout.Duration,
	}).Info("Starting adscout")

	model := ui.NewModel(ctx, cfg, svc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward outcome events to the UI status bar
	forward := func(e eventbus.DomainEvent) {
		go p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("Error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		bus.Close()
		os.Exit(1)
	}

	bus.Close()
	log.WithFields(log.Fields{
		"requested": stats.requested.Load(),
		"completed": stats.completed.Load(),
		"failed":    stats.failed.Load(),
		"stale":     stats.stale.Load(),
	}).Info("UI exited normally")
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, then applies environment overrides
func loadConfig(path string) (*config.Config, error) {
	var cs config.ConfigService
	if path != "" {
		cs = config.NewConfigServiceAt(path)
	} else {
		cs = config.NewConfigService()
	}

	cfg, err := cs.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func subscribeStats(bus eventbus.EventBus, stats *sessionStats) {
	bus.Subscribe(eventbus.EventSearchRequested, func(eventbus.DomainEvent) { stats.requested.Add(1) })
	bus.Subscribe(eventbus.EventSearchCompleted, func(eventbus.DomainEvent) { stats.completed.Add(1) })
	bus.Subscribe(eventbus.EventSearchFailed, func(eventbus.DomainEvent) { stats.failed.Add(1) })
	bus.Subscribe(eventbus.EventStaleResponseDropped, func(eventbus.DomainEvent) { stats.stale.Add(1) })
}
