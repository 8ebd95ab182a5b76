// Package mock provides test doubles for the flight ticket search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// Provider is a configurable mock implementation of domain.OfferProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	name      string
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.FlightOffer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.OfferProvider.Search.
// It respects context cancellation, applies the configured delay,
// and returns the configured offers or error.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times Search was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Provider)(nil)

// SampleOffers returns a slice of sample offers for testing.
// The offers have all required fields populated with realistic values.
func SampleOffers(provider string, count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)

	baseTime := time.Date(2026, 12, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departureTime := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrivalTime := departureTime.Add(time.Hour + 15*time.Minute)

		offers[i] = domain.FlightOffer{
			ID:       fmt.Sprintf("%s-%d", provider, i+1),
			Provider: provider,
			Airline: domain.AirlineInfo{
				Code: providerToAirlineCode(provider),
				Name: providerToAirlineName(provider),
			},
			FlightNumber:    fmt.Sprintf("%s%d", providerToAirlineCode(provider), 100+i),
			Origin:          "IST",
			Destination:     "ESB",
			DepartureTime:   departureTime,
			ArrivalTime:     arrivalTime,
			DurationMinutes: 75,
			Price:           450 + i*100,
			Currency:        "TRY",
			AvailableSeats:  25,
			BaggageIncluded: true,
			Refundable:      i%2 == 0,
		}
	}

	return offers
}

// providerToAirlineCode maps provider names to IATA codes.
func providerToAirlineCode(provider string) string {
	codes := map[string]string{
		"pegasus":    "PC",
		"thy":        "TK",
		"sunexpress": "XQ",
		"anadolujet": "AJ",
	}
	if code, ok := codes[provider]; ok {
		return code
	}
	return "XX"
}

// providerToAirlineName maps provider names to display names.
func providerToAirlineName(provider string) string {
	names := map[string]string{
		"pegasus":    "Pegasus",
		"thy":        "THY",
		"sunexpress": "SunExpress",
		"anadolujet": "AnadoluJet",
	}
	if name, ok := names[provider]; ok {
		return name
	}
	return "Unknown Airline"
}
