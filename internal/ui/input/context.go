package input

import (
	"adscout/internal/domain"
	"adscout/internal/ui/services/search"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State search.State
}

// CanRetry returns true when the last search failed
func (c *ModelContext) CanRetry() bool {
	return c.State.Status == search.StatusError
}

// ShowingResults returns true when advertiser cards are on screen
func (c *ModelContext) ShowingResults() bool {
	return c.State.Tab == domain.TabAdvertisers &&
		c.State.Status == search.StatusSuccess &&
		len(c.State.Results) > 0
}

// CurrentCountry returns the selected country code
func (c *ModelContext) CurrentCountry() string {
	return c.State.Country
}
