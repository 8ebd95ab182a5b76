package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

const sampleResponse = `{
	"data": [
		{
			"id": "1",
			"itineraries": [
				{
					"duration": "PT1H15M",
					"segments": [
						{
							"carrierCode": "TK",
							"number": "2102",
							"departure": {"iataCode": "IST", "at": "2026-10-10T08:30:00"},
							"arrival": {"iataCode": "ESB", "at": "2026-10-10T09:45:00"}
						}
					]
				}
			],
			"price": {"grandTotal": "845.00", "currency": "TRY"},
			"numberOfBookableSeats": 9
		}
	]
}`

func testQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        "2026-10-10",
	}
}

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter("", "key", nil, zerolog.Nop())
	assert.Equal(t, "amadeus", adapter.Name())
}

func TestAdapter_Search(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "IST", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "ESB", r.URL.Query().Get("destinationLocationCode"))
		assert.Equal(t, "2026-10-10", r.URL.Query().Get("departureDate"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	adapter := NewAdapter(server.URL, "test-key", nil, zerolog.Nop())

	offers, err := adapter.Search(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, offers, 1)

	assert.Equal(t, "Bearer test-key", gotAuth)

	offer := offers[0]
	assert.Equal(t, "amadeus", offer.Provider)
	assert.Equal(t, "TK", offer.Airline.Code)
	assert.Equal(t, "TK2102", offer.FlightNumber)
	assert.Equal(t, "IST", offer.Origin)
	assert.Equal(t, "ESB", offer.Destination)
	assert.Equal(t, 75, offer.DurationMinutes)
	assert.Equal(t, 845, offer.Price)
	assert.Equal(t, "TRY", offer.Currency)
	assert.Equal(t, 9, offer.AvailableSeats)
}

// fixedProvider is a minimal fallback for tests.
type fixedProvider struct {
	offers []domain.FlightOffer
}

func (p *fixedProvider) Name() string { return "fixed" }

func (p *fixedProvider) Search(context.Context, domain.SearchQuery) ([]domain.FlightOffer, error) {
	return p.offers, nil
}

func TestAdapter_FallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fallback := &fixedProvider{offers: []domain.FlightOffer{{ID: "fallback-1"}}}
	adapter := NewAdapter(server.URL, "test-key", fallback, zerolog.Nop())

	offers, err := adapter.Search(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "fallback-1", offers[0].ID)
}

func TestAdapter_AuthFailureNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewAdapter(server.URL, "bad-key", nil, zerolog.Nop())

	_, err := adapter.Search(context.Background(), testQuery())
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestAdapter_NoFallbackSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewAdapter(server.URL, "test-key", nil, zerolog.Nop())

	_, err := adapter.Search(context.Background(), testQuery())
	assert.ErrorContains(t, err, "amadeus status 500")
}

func TestAdapter_UnknownCity(t *testing.T) {
	adapter := NewAdapter("http://127.0.0.1:0", "test-key", nil, zerolog.Nop())

	offers, err := adapter.Search(context.Background(), domain.SearchQuery{
		Departure:   "Atlantis",
		Destination: "Ankara",
		Date:        "2026-10-10",
	})
	require.NoError(t, err)
	assert.Empty(t, offers)
}
