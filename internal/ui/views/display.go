package views

import (
	"strings"

	"adscout/internal/domain"
	"adscout/internal/ui/services/search"
)

// Region is what the result area shows
type Region int

const (
	RegionNone Region = iota
	RegionLoading
	RegionError
	RegionEmpty
	RegionResults
	RegionAdsUnavailable
)

func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionLoading:
		return "loading"
	case RegionError:
		return "error"
	case RegionEmpty:
		return "empty"
	case RegionResults:
		return "results"
	case RegionAdsUnavailable:
		return "ads-unavailable"
	default:
		return "unknown"
	}
}

// User-facing texts
const (
	LoadingText        = "Searching advertisers..."
	NoResultsText      = "No advertisers found for your search."
	AdsUnavailableText = "Ad search is not available yet. Press f1 for advertisers."
	RetryHint          = "Press ctrl+r to retry"
)

// CardView is one advertiser card, ready to draw
type CardView struct {
	Title        string
	Verified     bool
	Category     string
	Likes        string
	Followers    string
	ImageURI     string
	FacebookURL  string
	InstagramURL string
}

// Display describes what the result area shows for a given state
type Display struct {
	Region  Region
	Message string
	Cards   []CardView
}

// BuildDisplay maps the view state to a display description. It has no
// side effects and reads nothing but its argument.
func BuildDisplay(state ViewState) Display {
	if state.Tab == domain.TabAds {
		return Display{Region: RegionAdsUnavailable, Message: AdsUnavailableText}
	}

	switch state.Status {
	case search.StatusLoading:
		return Display{Region: RegionLoading, Message: LoadingText}

	case search.StatusError:
		return Display{Region: RegionError, Message: state.Message}

	case search.StatusSuccess:
		if len(state.Results) > 0 {
			cards := make([]CardView, 0, len(state.Results))
			for _, a := range state.Results {
				cards = append(cards, NewCardView(a))
			}
			return Display{Region: RegionResults, Cards: cards}
		}
		if strings.TrimSpace(state.Query) != "" {
			return Display{Region: RegionEmpty, Message: NoResultsText}
		}
	}

	return Display{Region: RegionNone}
}

// NewCardView converts an advertiser into its card
func NewCardView(a domain.Advertiser) CardView {
	return CardView{
		Title:        a.Name,
		Verified:     a.IsVerified(),
		Category:     a.Category,
		Likes:        FormatCount(a.LikeCount()),
		Followers:    FormatCount(a.FollowerCount()),
		ImageURI:     a.ImageURI,
		FacebookURL:  a.FacebookURL(),
		InstagramURL: a.InstagramURL(),
	}
}
