package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
)

// scoringOffer builds an offer that hits none of the scoring bonuses or
// penalties: mid price, neutral hour, unknown airline, neutral seat count.
func scoringOffer() domain.FlightOffer {
	return domain.FlightOffer{
		ID:             "neutral",
		Airline:        domain.AirlineInfo{Code: "XX", Name: "Nowhere Air"},
		DepartureTime:  time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC),
		Price:          600,
		AvailableSeats: 20,
	}
}

func TestScoreOffer(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*domain.FlightOffer)
		expected int
	}{
		{
			name:     "neutral offer keeps the base score",
			mutate:   func(o *domain.FlightOffer) {},
			expected: 100,
		},
		{
			name: "cheap price caps at 100",
			mutate: func(o *domain.FlightOffer) {
				o.Price = 250
			},
			expected: 100,
		},
		{
			name: "expensive price",
			mutate: func(o *domain.FlightOffer) {
				o.Price = 900
			},
			expected: 80,
		},
		{
			name: "expensive early morning departure",
			mutate: func(o *domain.FlightOffer) {
				o.Price = 900
				o.DepartureTime = time.Date(2026, 10, 10, 5, 0, 0, 0, time.UTC)
			},
			expected: 70,
		},
		{
			name: "good hours offset an expensive price",
			mutate: func(o *domain.FlightOffer) {
				o.Price = 900
				o.DepartureTime = time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)
			},
			expected: 95,
		},
		{
			name: "late night departure",
			mutate: func(o *domain.FlightOffer) {
				o.DepartureTime = time.Date(2026, 10, 10, 23, 0, 0, 0, time.UTC)
				o.Price = 900
			},
			expected: 70,
		},
		{
			name: "premium airline bonus",
			mutate: func(o *domain.FlightOffer) {
				o.Airline = domain.AirlineInfo{Code: "TK", Name: "THY"}
				o.Price = 900
			},
			expected: 90,
		},
		{
			name: "budget airline bonus is case insensitive",
			mutate: func(o *domain.FlightOffer) {
				o.Airline = domain.AirlineInfo{Code: "XQ", Name: "sunexpress"}
				o.Price = 900
			},
			expected: 85,
		},
		{
			name: "scarce seats penalty",
			mutate: func(o *domain.FlightOffer) {
				o.AvailableSeats = 5
				o.Price = 900
			},
			expected: 75,
		},
		{
			name: "many seats bonus",
			mutate: func(o *domain.FlightOffer) {
				o.AvailableSeats = 40
				o.Price = 900
			},
			expected: 85,
		},
		{
			name: "baggage and refundable bonuses",
			mutate: func(o *domain.FlightOffer) {
				o.BaggageIncluded = true
				o.Refundable = true
				o.Price = 900
			},
			expected: 95,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offer := scoringOffer()
			tc.mutate(&offer)
			assert.Equal(t, tc.expected, usecase.ScoreOffer(offer))
		})
	}
}

func TestScoreOffer_AlwaysInRange(t *testing.T) {
	worst := domain.FlightOffer{
		Airline:        domain.AirlineInfo{Code: "XX", Name: "Nowhere Air"},
		DepartureTime:  time.Date(2026, 10, 10, 3, 0, 0, 0, time.UTC),
		Price:          1500,
		AvailableSeats: 2,
	}
	best := domain.FlightOffer{
		Airline:         domain.AirlineInfo{Code: "TK", Name: "THY"},
		DepartureTime:   time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC),
		Price:           250,
		AvailableSeats:  45,
		BaggageIncluded: true,
		Refundable:      true,
	}

	assert.GreaterOrEqual(t, usecase.ScoreOffer(worst), 0)
	assert.Equal(t, 100, usecase.ScoreOffer(best))
}

func TestCategorizePrice(t *testing.T) {
	stats := domain.PriceStatistics{Min: 200, Max: 1000, Mean: 500, Count: 5}

	// Cheap threshold: 200 + 0.3*(500-200) = 290.
	// Expensive threshold: 500 + 0.7*(1000-500) = 850.
	assert.Equal(t, domain.PriceCheap, usecase.CategorizePrice(200, stats))
	assert.Equal(t, domain.PriceCheap, usecase.CategorizePrice(290, stats))
	assert.Equal(t, domain.PriceMid, usecase.CategorizePrice(291, stats))
	assert.Equal(t, domain.PriceMid, usecase.CategorizePrice(849, stats))
	assert.Equal(t, domain.PriceExpensive, usecase.CategorizePrice(850, stats))
	assert.Equal(t, domain.PriceExpensive, usecase.CategorizePrice(1000, stats))
}

func TestCategorizePrice_EmptyStats(t *testing.T) {
	assert.Equal(t, domain.PriceMid, usecase.CategorizePrice(500, domain.PriceStatistics{}))
}

func TestRecommendation(t *testing.T) {
	testCases := []struct {
		name     string
		score    int
		category domain.PriceCategory
		expected string
	}{
		{"high score cheap", 85, domain.PriceCheap, "🌟 Mükemmel fiyat! Hemen rezervasyon yapın."},
		{"high score mid", 85, domain.PriceMid, "✅ Kaliteli seçenek, önerilen uçuş."},
		{"mid score cheap", 65, domain.PriceCheap, "💰 İyi fiyat, değerlendirebilirsiniz."},
		{"mid score expensive", 65, domain.PriceExpensive, "👍 Makul seçenek."},
		{"low score expensive", 40, domain.PriceExpensive, "💸 Pahalı, alternatif araştırın."},
		{"low score mid", 40, domain.PriceMid, "⚠️ Ortalama seçenek."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, usecase.Recommendation(tc.score, tc.category))
		})
	}
}

func TestAnalyzeOffers_SortsByScoreDescending(t *testing.T) {
	cheap := scoringOffer()
	cheap.ID = "cheap"
	cheap.Price = 250

	expensive := scoringOffer()
	expensive.ID = "expensive"
	expensive.Price = 900

	analyzer := usecase.NewAnalyzer(nil)
	scored := analyzer.AnalyzeOffers([]domain.FlightOffer{expensive, cheap})

	require.Len(t, scored, 2)
	assert.Equal(t, "cheap", scored[0].ID)
	assert.Equal(t, "expensive", scored[1].ID)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestAnalyzeOffers_StableOnTies(t *testing.T) {
	first := scoringOffer()
	first.ID = "first"
	second := scoringOffer()
	second.ID = "second"

	analyzer := usecase.NewAnalyzer(nil)
	scored := analyzer.AnalyzeOffers([]domain.FlightOffer{first, second})

	require.Len(t, scored, 2)
	assert.Equal(t, scored[0].Score, scored[1].Score)
	assert.Equal(t, "first", scored[0].ID)
	assert.Equal(t, "second", scored[1].ID)
}

func TestAnalyzeOffers_DoesNotMutateInput(t *testing.T) {
	offers := []domain.FlightOffer{scoringOffer()}
	original := offers[0]

	analyzer := usecase.NewAnalyzer(nil)
	analyzer.AnalyzeOffers(offers)

	assert.Equal(t, original, offers[0])
}

func TestAnalyzeOffers_Empty(t *testing.T) {
	analyzer := usecase.NewAnalyzer(nil)
	scored := analyzer.AnalyzeOffers(nil)

	assert.NotNil(t, scored)
	assert.Empty(t, scored)
}

func TestAnalyzeOffers_HistoryBounded(t *testing.T) {
	analyzer := usecase.NewAnalyzer(nil)

	batch := make([]domain.FlightOffer, 100)
	for i := range batch {
		batch[i] = scoringOffer()
	}

	for i := 0; i < 12; i++ {
		analyzer.AnalyzeOffers(batch)
	}

	assert.Equal(t, 1000, analyzer.HistoryLen())
}
