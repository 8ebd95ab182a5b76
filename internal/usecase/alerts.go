package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
)

// AlertChecker walks the active saved searches and emails a price alert
// when an offer is found at or below the user's price target.
type AlertChecker struct {
	store      UserStore
	search     SearchUseCase
	dispatcher *notifier.Dispatcher
	log        zerolog.Logger
}

// NewAlertChecker wires the checker to its collaborators.
func NewAlertChecker(store UserStore, search SearchUseCase, dispatcher *notifier.Dispatcher, log zerolog.Logger) *AlertChecker {
	return &AlertChecker{
		store:      store,
		search:     search,
		dispatcher: dispatcher,
		log:        log,
	}
}

// CheckSavedSearches runs every active watch once. It returns how many
// watches were checked and how many alerts went out. Individual search or
// delivery failures are logged and skipped; only listing the watches can
// fail the whole pass.
func (c *AlertChecker) CheckSavedSearches(ctx context.Context) (checked, alerted int, err error) {
	watches, err := c.store.ActiveWatches(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, watch := range watches {
		if watch.MaxPrice <= 0 {
			continue
		}
		checked++

		query := watch.Query()
		// The watch query carries the max price as a filter; lift it so the
		// comparison below sees the full offer list.
		query.MaxPrice = 0

		offers, searchErr := c.search.SearchOffers(ctx, query)
		if searchErr != nil {
			c.log.Warn().
				Str("search_id", watch.ID).
				Err(searchErr).
				Msg("Watch search failed")
			continue
		}
		if len(offers) == 0 {
			continue
		}

		best := offers[0] // SearchOffers returns price-ascending
		if best.Price > watch.MaxPrice {
			continue
		}

		user, userErr := c.store.UserByID(ctx, watch.UserID)
		if userErr != nil {
			c.log.Warn().
				Str("search_id", watch.ID).
				Err(userErr).
				Msg("Watch owner lookup failed")
			continue
		}

		if c.dispatcher.SendPriceAlert(ctx, user.Email, best, watch.Query(), watch.MaxPrice) {
			alerted++
		}
	}

	return checked, alerted, nil
}
