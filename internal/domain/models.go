package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// VerificationBlue marks an advertiser page carrying the blue check
const VerificationBlue = "blue_verified"

// DefaultCountry is selected when nothing else is configured
const DefaultCountry = "US"

const (
	facebookProfileBase  = "https://facebook.com/"
	instagramProfileBase = "https://instagram.com/"
)

// Advertiser is a single search result as returned by the collaborator API.
// Likes and IGFollowers are pointers so that an absent field can be told
// apart from an explicit zero.
type Advertiser struct {
	ID           AdvertiserID `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Verification string       `json:"verification"`
	ImageURI     string       `json:"imageURI,omitempty"`
	Likes        *int64       `json:"likes,omitempty"`
	IGFollowers  *int64       `json:"igFollowers,omitempty"`
	IGUsername   string       `json:"igUsername,omitempty"`
}

// IsVerified reports whether the advertiser carries the blue verification
func (a Advertiser) IsVerified() bool {
	return a.Verification == VerificationBlue
}

// LikeCount returns the like count, 0 when the API omitted it
func (a Advertiser) LikeCount() int64 {
	if a.Likes == nil {
		return 0
	}
	return *a.Likes
}

// FollowerCount returns the Instagram follower count, 0 when omitted
func (a Advertiser) FollowerCount() int64 {
	if a.IGFollowers == nil {
		return 0
	}
	return *a.IGFollowers
}

// FacebookURL returns the page profile link, or "" without an id
func (a Advertiser) FacebookURL() string {
	if a.ID == "" {
		return ""
	}
	return facebookProfileBase + string(a.ID)
}

// InstagramURL returns the Instagram profile link, or "" without a handle
func (a Advertiser) InstagramURL() string {
	if a.IGUsername == "" {
		return ""
	}
	return instagramProfileBase + a.IGUsername
}

// AdvertiserID accepts both JSON strings and JSON numbers.
// Page ids are numeric on the wire for some API versions.
type AdvertiserID string

// UnmarshalJSON implements json.Unmarshaler
func (id *AdvertiserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AdvertiserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("advertiser id must be a string or number: %w", err)
	}
	*id = AdvertiserID(n.String())
	return nil
}

// Country is an entry of the country selector
type Country struct {
	Code string
	Name string
}

// SupportedCountries is the fixed selector set, in display order
var SupportedCountries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "PL", Name: "Poland"},
	{Code: "GB", Name: "United Kingdom"},
}

// LookupCountry finds a supported country by code
func LookupCountry(code string) (Country, bool) {
	for _, c := range SupportedCountries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryIndex returns the selector position of code, or -1
func CountryIndex(code string) int {
	for i, c := range SupportedCountries {
		if c.Code == code {
			return i
		}
	}
	return -1
}

// SearchQuery is what gets sent to the collaborator
type SearchQuery struct {
	Text        string
	CountryCode string
}

// Trimmed returns the query text without surrounding whitespace
func (q SearchQuery) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// Valid reports whether the query may be submitted
func (q SearchQuery) Valid() bool {
	return q.Trimmed() != ""
}

// Tab identifies the active dashboard tab
type Tab int

const (
	TabAdvertisers Tab = iota
	TabAds
)

func (t Tab) String() string {
	switch t {
	case TabAdvertisers:
		return "Advertisers"
	case TabAds:
		return "Ads"
	default:
		return "Unknown"
	}
}
