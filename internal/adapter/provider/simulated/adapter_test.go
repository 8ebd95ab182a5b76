package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

func testAdapter(airline Airline) *Adapter {
	clock := timeutil.NewMockClockFromString("2026-09-01T10:00:00Z")
	return NewAdapter(airline, clock, 42)
}

func TestAdapter_Name(t *testing.T) {
	assert.Equal(t, "simulated_pegasus", testAdapter(Pegasus).Name())
	assert.Equal(t, "simulated_thy", testAdapter(THY).Name())
}

func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.OfferProvider = (*Adapter)(nil)
}

func TestAdapter_Search(t *testing.T) {
	adapter := testAdapter(Pegasus)

	query := domain.SearchQuery{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        "2026-10-10",
	}

	offers, err := adapter.Search(context.Background(), query)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(offers), 2)
	require.LessOrEqual(t, len(offers), 5)

	for _, offer := range offers {
		assert.NotEmpty(t, offer.ID)
		assert.Equal(t, "simulated_pegasus", offer.Provider)
		assert.Equal(t, "PC", offer.Airline.Code)
		assert.Equal(t, "Pegasus", offer.Airline.Name)
		assert.Equal(t, "IST", offer.Origin)
		assert.Equal(t, "ESB", offer.Destination)
		assert.Equal(t, "TRY", offer.Currency)
		assert.NotEmpty(t, offer.BookingURL)

		// Departures stay within the operating day on the requested date.
		assert.Equal(t, 10, offer.DepartureTime.Day())
		hour := offer.DepartureTime.Hour()
		assert.GreaterOrEqual(t, hour, 6)
		assert.LessOrEqual(t, hour, 22)
		minute := offer.DepartureTime.Minute()
		assert.True(t, minute == 0 || minute == 30)

		assert.GreaterOrEqual(t, offer.DurationMinutes, 60)
		assert.LessOrEqual(t, offer.DurationMinutes, 240)
		assert.Equal(t, offer.DepartureTime.Add(time.Duration(offer.DurationMinutes)*time.Minute), offer.ArrivalTime)

		assert.GreaterOrEqual(t, offer.AvailableSeats, 5)
		assert.LessOrEqual(t, offer.AvailableSeats, 50)
	}
}

func TestAdapter_PriceReflectsAirlineMultiplier(t *testing.T) {
	query := domain.SearchQuery{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        "2026-10-10",
	}

	budget := testAdapter(Pegasus)
	offers, err := budget.Search(context.Background(), query)
	require.NoError(t, err)
	for _, offer := range offers {
		// Base price 200-1000 scaled by 0.8.
		assert.GreaterOrEqual(t, offer.Price, 160)
		assert.LessOrEqual(t, offer.Price, 800)
	}

	premium := testAdapter(THY)
	offers, err = premium.Search(context.Background(), query)
	require.NoError(t, err)
	for _, offer := range offers {
		assert.GreaterOrEqual(t, offer.Price, 240)
		assert.LessOrEqual(t, offer.Price, 1200)
	}
}

func TestAdapter_UnknownCityYieldsNoOffers(t *testing.T) {
	adapter := testAdapter(Pegasus)

	offers, err := adapter.Search(context.Background(), domain.SearchQuery{
		Departure:   "Atlantis",
		Destination: "Ankara",
		Date:        "2026-10-10",
	})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestAdapter_BadDateYieldsNoOffers(t *testing.T) {
	adapter := testAdapter(Pegasus)

	offers, err := adapter.Search(context.Background(), domain.SearchQuery{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        "tomorrow",
	})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestAdapter_CancelledContext(t *testing.T) {
	adapter := testAdapter(Pegasus)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Search(ctx, domain.SearchQuery{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        "2026-10-10",
	})
	assert.ErrorIs(t, err, context.Canceled)
}
