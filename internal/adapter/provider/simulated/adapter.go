// Package simulated implements an offer provider that generates realistic
// mock flight offers for a fixed set of Turkish airlines.
package simulated

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

// Airline describes the profile of a simulated carrier.
type Airline struct {
	Code       string
	Name       string
	Multiplier float64 // applied to the random base price
}

// The simulated carriers. The price multipliers keep the generated batches
// realistic: budget carriers come out cheaper than full service ones.
var (
	Pegasus    = Airline{Code: "PC", Name: "Pegasus", Multiplier: 0.8}
	THY        = Airline{Code: "TK", Name: "THY", Multiplier: 1.2}
	SunExpress = Airline{Code: "XQ", Name: "SunExpress", Multiplier: 0.9}
	AnadoluJet = Airline{Code: "AJ", Name: "AnadoluJet", Multiplier: 0.85}
)

// Airlines lists every simulated carrier.
var Airlines = []Airline{Pegasus, THY, SunExpress, AnadoluJet}

// Offer generation bounds.
const (
	minOffers = 2
	maxOffers = 5

	minBasePrice = 200
	maxBasePrice = 1000

	minDepartureHour = 6
	maxDepartureHour = 22

	minDurationHours = 1
	maxDurationHours = 4

	minSeats = 5
	maxSeats = 50
)

// Adapter generates offers for a single airline. One registry entry per
// carrier gives the scatter-gather loop several independent providers, the
// same shape a set of real upstream integrations would have.
type Adapter struct {
	airline Airline
	clock   timeutil.Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewAdapter creates a simulated provider for one airline. A nil clock
// falls back to the real clock; seed 0 derives the seed from the clock.
func NewAdapter(airline Airline, clock timeutil.Clock, seed int64) *Adapter {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return &Adapter{
		airline: airline,
		clock:   clock,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Name implements domain.OfferProvider.
func (a *Adapter) Name() string {
	return "simulated_" + strings.ToLower(a.airline.Name)
}

// Search implements domain.OfferProvider. It generates 2 to 5 offers for
// the first airport pair matching the query's cities.
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	origins := domain.AirportCodes(query.Departure)
	destinations := domain.AirportCodes(query.Destination)
	if len(origins) == 0 || len(destinations) == 0 {
		return []domain.FlightOffer{}, nil
	}

	date, err := time.Parse(domain.DateLayout, query.Date)
	if err != nil {
		return []domain.FlightOffer{}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	count := minOffers + a.rnd.Intn(maxOffers-minOffers+1)
	offers := make([]domain.FlightOffer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, a.generate(date, origins[0], destinations[0]))
	}
	return offers, nil
}

// generate creates one offer. Caller holds a.mu.
func (a *Adapter) generate(date time.Time, origin, destination string) domain.FlightOffer {
	hour := minDepartureHour + a.rnd.Intn(maxDepartureHour-minDepartureHour+1)
	minute := a.rnd.Intn(2) * 30
	departure := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)

	durationMinutes := (minDurationHours + a.rnd.Intn(maxDurationHours-minDurationHours+1)) * 60

	basePrice := minBasePrice + a.rnd.Intn(maxBasePrice-minBasePrice+1)
	price := int(float64(basePrice) * a.airline.Multiplier)

	flightNumber := fmt.Sprintf("%s%d", a.airline.Code, 100+a.rnd.Intn(900))

	return domain.FlightOffer{
		ID:              uuid.New().String(),
		Provider:        a.Name(),
		Airline:         domain.AirlineInfo{Code: a.airline.Code, Name: a.airline.Name},
		FlightNumber:    flightNumber,
		Origin:          origin,
		Destination:     destination,
		DepartureTime:   departure,
		ArrivalTime:     departure.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Price:           price,
		Currency:        "TRY",
		AvailableSeats:  minSeats + a.rnd.Intn(maxSeats-minSeats+1),
		BookingURL:      fmt.Sprintf("https://ornek-rezervasyon.com/%s/%s", strings.ToLower(a.airline.Name), flightNumber),
		BaggageIncluded: a.rnd.Intn(2) == 1,
		Refundable:      a.rnd.Intn(2) == 1,
	}
}

// Ensure Adapter implements OfferProvider at compile time.
var _ domain.OfferProvider = (*Adapter)(nil)
