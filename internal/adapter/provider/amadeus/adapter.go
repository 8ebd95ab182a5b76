// Package amadeus implements an offer provider backed by the Amadeus
// flight-offers API. Any upstream failure falls back to a local fallback
// provider so searches keep working without the external service.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultBaseURL is the Amadeus test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// defaultTimeout bounds a single upstream request.
const defaultTimeout = 10 * time.Second

// Adapter queries the Amadeus flight-offers endpoint.
type Adapter struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	fallback domain.OfferProvider
	log      zerolog.Logger
}

// NewAdapter creates an Amadeus provider. fallback may be nil, in which
// case upstream failures surface as errors instead of fallback offers.
func NewAdapter(baseURL, apiKey string, fallback domain.OfferProvider, log zerolog.Logger) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adapter{
		baseURL:  baseURL,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: defaultTimeout},
		fallback: fallback,
		log:      log,
	}
}

// Name implements domain.OfferProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// offersResponse mirrors the subset of the Amadeus flight-offers payload
// this adapter consumes.
type offersResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
				Number      string `json:"number"`
				Departure   struct {
					IATACode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IATACode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		NumberOfBookableSeats int `json:"numberOfBookableSeats"`
	} `json:"data"`
}

// Search implements domain.OfferProvider. The upstream call is retried with
// the provider backoff profile; after the retries are exhausted the fallback
// provider takes over.
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	origins := domain.AirportCodes(query.Departure)
	destinations := domain.AirportCodes(query.Destination)
	if len(origins) == 0 || len(destinations) == 0 {
		return []domain.FlightOffer{}, nil
	}

	offers, err := retry.DoWithResult(ctx, func() ([]domain.FlightOffer, error) {
		return a.fetch(ctx, origins[0], destinations[0], query.Date)
	}, retry.ProviderConfig.WithRetryIf(retry.SkipPermanent))
	if err == nil {
		return offers, nil
	}

	if a.fallback == nil {
		return nil, err
	}
	a.log.Warn().
		Err(err).
		Msg("Amadeus search failed, falling back to simulated offers")
	return a.fallback.Search(ctx, query)
}

// fetch performs one upstream request.
func (a *Adapter) fetch(ctx context.Context, origin, destination, date string) ([]domain.FlightOffer, error) {
	endpoint := fmt.Sprintf("%s/v2/shopping/flight-offers", a.baseURL)

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", date)
	params.Set("adults", "1")
	params.Set("currencyCode", "TRY")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Bad credentials never recover within a retry loop.
		return nil, retry.NewPermanent(fmt.Errorf("amadeus auth failed: status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("amadeus status %d", resp.StatusCode)
	}

	var payload offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode amadeus response: %w", err)
	}
	return a.normalize(payload), nil
}

// normalize converts the Amadeus payload to domain offers. Entries that
// cannot be parsed are skipped.
func (a *Adapter) normalize(payload offersResponse) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, len(payload.Data))
	for _, item := range payload.Data {
		if len(item.Itineraries) == 0 || len(item.Itineraries[0].Segments) == 0 {
			continue
		}
		itinerary := item.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		departure, err := time.Parse("2006-01-02T15:04:05", first.Departure.At)
		if err != nil {
			continue
		}
		arrival, err := time.Parse("2006-01-02T15:04:05", last.Arrival.At)
		if err != nil {
			continue
		}

		price, err := strconv.ParseFloat(item.Price.GrandTotal, 64)
		if err != nil {
			continue
		}

		offers = append(offers, domain.FlightOffer{
			ID:              uuid.New().String(),
			Provider:        ProviderName,
			Airline:         domain.AirlineInfo{Code: first.CarrierCode, Name: first.CarrierCode},
			FlightNumber:    first.CarrierCode + first.Number,
			Origin:          first.Departure.IATACode,
			Destination:     last.Arrival.IATACode,
			DepartureTime:   departure,
			ArrivalTime:     arrival,
			DurationMinutes: int(arrival.Sub(departure).Minutes()),
			Price:           int(price),
			Currency:        item.Price.Currency,
			AvailableSeats:  item.NumberOfBookableSeats,
		})
	}
	return offers
}

// Ensure Adapter implements OfferProvider at compile time.
var _ domain.OfferProvider = (*Adapter)(nil)
