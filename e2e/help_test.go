//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// flag exits with status 0 for -help
	cmd := exec.Command(binPath, "-help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help flag should exit cleanly")

	output := string(out)
	require.Contains(t, output, "-api-url", "Help should list the API flag")
	require.Contains(t, output, "-country", "Help should list the country flag")
	require.Contains(t, output, "-config", "Help should list the config flag")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.ServeResults(`{"results":[]}`)
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	tf.Snapshot()
	require.NoError(t, tf.SendKeys(KeyF10))
	require.True(t, tf.SeePlainWithin("Countries: US, PL, GB", 3*time.Second), "Help should open in the pager")

	// q leaves ov and hands the terminal back
	require.NoError(t, tf.SendKeys("q"))
	require.True(t, tf.SeePlain("Search advertisers..."), "Should return to the dashboard after closing the pager")
}
