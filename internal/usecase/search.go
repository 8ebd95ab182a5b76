// Package usecase contains the business logic for flight search, scoring and
// analysis. Provider calls are orchestrated with the Scatter-Gather pattern.
package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

// Default timeout and cache values.
const (
	DefaultGlobalTimeout   = 5 * time.Second
	DefaultProviderTimeout = 2 * time.Second
	DefaultCacheLimit      = 1000
)

// SearchUseCase defines the interface for flight search operations.
type SearchUseCase interface {
	// SearchOffers queries all registered providers and returns the merged
	// offer list sorted by ascending price. Unknown cities and unparsable
	// dates yield an empty result with a nil error.
	SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error)

	// PopularRoutes returns the fixed table of popular domestic routes.
	PopularRoutes() []domain.Route

	// PriceTrends returns a synthetic daily price series for a route.
	PriceTrends(departure, destination string, days int) []domain.TrendPoint
}

// Config contains configuration options for the search use case.
type Config struct {
	GlobalTimeout   time.Duration
	ProviderTimeout time.Duration
	CacheLimit      int

	// OnProviderError is invoked with the provider name for every failed
	// provider query. Optional; used to feed the provider error metric.
	OnProviderError func(provider string)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
		CacheLimit:      DefaultCacheLimit,
	}
}

// searchUseCase implements SearchUseCase.
type searchUseCase struct {
	registry        *domain.ProviderRegistry
	globalTimeout   time.Duration
	providerTimeout time.Duration
	onProviderError func(provider string)
	clock           timeutil.Clock
	log             zerolog.Logger

	// Bounded same-query result cache. Instance-held so its lifecycle is
	// tied to the use case object; FIFO eviction at cacheLimit entries.
	cacheMu    sync.RWMutex
	cache      map[string][]domain.FlightOffer
	cacheOrder []string
	cacheLimit int

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewSearchUseCase creates a SearchUseCase backed by the given provider
// registry. If config is nil, defaults are used.
func NewSearchUseCase(registry *domain.ProviderRegistry, config *Config, clock timeutil.Clock, log zerolog.Logger) SearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
		if config.CacheLimit > 0 {
			cfg.CacheLimit = config.CacheLimit
		}
		cfg.OnProviderError = config.OnProviderError
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &searchUseCase{
		registry:        registry,
		globalTimeout:   cfg.GlobalTimeout,
		providerTimeout: cfg.ProviderTimeout,
		onProviderError: cfg.OnProviderError,
		clock:           clock,
		log:             log,
		cache:           make(map[string][]domain.FlightOffer),
		cacheLimit:      cfg.CacheLimit,
		rnd:             rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// providerResult holds the result from a single provider query.
type providerResult struct {
	Provider string
	Offers   []domain.FlightOffer
	Error    error
}

// SearchOffers implements SearchUseCase.SearchOffers.
func (uc *searchUseCase) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	// Unknown cities fail silently with an empty result, matching the
	// search contract.
	if domain.AirportCodes(query.Departure) == nil || domain.AirportCodes(query.Destination) == nil {
		uc.log.Debug().
			Str("departure", query.Departure).
			Str("destination", query.Destination).
			Msg("Unknown city in search query")
		return []domain.FlightOffer{}, nil
	}

	if _, err := time.Parse(domain.DateLayout, query.Date); err != nil {
		uc.log.Debug().Str("date", query.Date).Msg("Unparsable date in search query")
		return []domain.FlightOffer{}, nil
	}

	if cached, ok := uc.cached(query.Key()); ok {
		return cached, nil
	}

	providers := uc.registry.GetAll()
	if len(providers) == 0 {
		return nil, domain.ErrAllProvidersFailed
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	// Scatter: query each provider concurrently.
	resultsChan := make(chan providerResult, len(providers))
	var wg sync.WaitGroup
	for _, provider := range providers {
		wg.Add(1)
		go func(p domain.OfferProvider) {
			defer wg.Done()
			uc.queryProvider(ctx, p, query, resultsChan)
		}(provider)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Gather: collect results, tolerating partial failures.
	var offers []domain.FlightOffer
	failed := 0
	for result := range resultsChan {
		if result.Error != nil {
			failed++
			if uc.onProviderError != nil {
				uc.onProviderError(result.Provider)
			}
			uc.log.Warn().
				Str("provider", result.Provider).
				Err(result.Error).
				Msg("Provider search failed")
			continue
		}
		offers = append(offers, result.Offers...)
	}

	if failed == len(providers) {
		return nil, domain.ErrAllProvidersFailed
	}

	offers = filterOffers(offers, query)

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	uc.store(query.Key(), offers)
	return offers, nil
}

// queryProvider queries a single provider with timeout and panic recovery.
func (uc *searchUseCase) queryProvider(ctx context.Context, provider domain.OfferProvider, query domain.SearchQuery, results chan<- providerResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	name := provider.Name()

	// One panicking provider must not take down the whole search.
	defer func() {
		if r := recover(); r != nil {
			results <- providerResult{
				Provider: name,
				Error:    fmt.Errorf("provider panic: %v", r),
			}
		}
	}()

	offers, err := provider.Search(ctx, query)
	results <- providerResult{
		Provider: name,
		Offers:   offers,
		Error:    err,
	}
}

// filterOffers applies the query-level max price and airline filters.
func filterOffers(offers []domain.FlightOffer, query domain.SearchQuery) []domain.FlightOffer {
	if query.MaxPrice <= 0 && query.Airline == "" {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if query.MaxPrice > 0 && o.Price > query.MaxPrice {
			continue
		}
		if query.Airline != "" && !matchesAirline(o.Airline, query.Airline) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// matchesAirline reports whether an airline preference (code or name,
// any case) matches an offer's airline.
func matchesAirline(airline domain.AirlineInfo, preference string) bool {
	return strings.EqualFold(airline.Code, preference) ||
		strings.EqualFold(airline.Name, preference)
}

// cached returns the cached result for a query key, if present.
func (uc *searchUseCase) cached(key string) ([]domain.FlightOffer, bool) {
	uc.cacheMu.RLock()
	defer uc.cacheMu.RUnlock()
	offers, ok := uc.cache[key]
	return offers, ok
}

// store puts a result into the cache, evicting the oldest entry when full.
func (uc *searchUseCase) store(key string, offers []domain.FlightOffer) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	if _, exists := uc.cache[key]; !exists {
		uc.cacheOrder = append(uc.cacheOrder, key)
		for len(uc.cacheOrder) > uc.cacheLimit {
			oldest := uc.cacheOrder[0]
			uc.cacheOrder = uc.cacheOrder[1:]
			delete(uc.cache, oldest)
		}
	}
	uc.cache[key] = offers
}

// popularRoutes is the fixed popular-route table.
var popularRoutes = []domain.Route{
	{Departure: "İstanbul", Destination: "Ankara", AvgPrice: 350},
	{Departure: "İstanbul", Destination: "İzmir", AvgPrice: 280},
	{Departure: "İstanbul", Destination: "Antalya", AvgPrice: 420},
	{Departure: "Ankara", Destination: "İzmir", AvgPrice: 320},
}

// PopularRoutes implements SearchUseCase.PopularRoutes.
func (uc *searchUseCase) PopularRoutes() []domain.Route {
	routes := make([]domain.Route, len(popularRoutes))
	copy(routes, popularRoutes)
	return routes
}

// PriceTrends implements SearchUseCase.PriceTrends. The series is synthetic:
// a random base price per call with bounded daily fluctuation, floored at
// 150 TRY.
func (uc *searchUseCase) PriceTrends(departure, destination string, days int) []domain.TrendPoint {
	if days <= 0 {
		days = 30
	}

	uc.rndMu.Lock()
	base := 250 + uc.rnd.Intn(251)
	variations := make([]int, days)
	for i := range variations {
		variations[i] = -50 + uc.rnd.Intn(151)
	}
	uc.rndMu.Unlock()

	now := uc.clock.Now()
	trends := make([]domain.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		price := base + variations[i]
		if price < 150 {
			price = 150
		}
		trends = append(trends, domain.TrendPoint{
			Date:  now.AddDate(0, 0, i).Format(domain.DateLayout),
			Price: price,
		})
	}
	return trends
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
