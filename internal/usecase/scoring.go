package usecase

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

// Scoring weights. The score starts at a base of 100 and each heuristic
// shifts it before the final clamp to [0, 100].
const (
	scoreBase = 100

	bonusCheapPrice  = 20 // price < 300
	bonusMidPrice    = 10 // price < 500
	malusHighPrice   = 20 // price > 800
	bonusGoodHours   = 15 // departure in [8,10] or [14,18]
	malusOddHours    = 10 // departure before 06 or after 22
	bonusPremium     = 10 // THY / Turkish
	bonusBudget      = 5  // Pegasus / SunExpress
	malusScarceSeats = 5  // fewer than 10 seats
	bonusManySeats   = 5  // more than 30 seats
	bonusBaggage     = 10
	bonusRefundable  = 5
)

// historyLimit caps the analyzer's rolling record of analyzed offers.
const historyLimit = 1000

// analyzedRecord is one entry in the analyzer's rolling history.
type analyzedRecord struct {
	Timestamp time.Time
	Offer     domain.ScoredOffer
}

// Analyzer scores and categorizes offer batches. It keeps a bounded rolling
// history of everything it analyzed, for inspection; the history is
// instance-held and safe for concurrent use.
type Analyzer struct {
	clock timeutil.Clock

	mu      sync.Mutex
	history []analyzedRecord
}

// NewAnalyzer creates an Analyzer. A nil clock falls back to the real clock.
func NewAnalyzer(clock timeutil.Clock) *Analyzer {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Analyzer{clock: clock}
}

// AnalyzeOffers scores every offer in the batch, attaches batch-relative
// price categories and recommendations, and returns the result sorted by
// descending score. The sort is stable: ties keep their encounter order.
// The input slice is never mutated.
func (a *Analyzer) AnalyzeOffers(offers []domain.FlightOffer) []domain.ScoredOffer {
	if len(offers) == 0 {
		return []domain.ScoredOffer{}
	}

	stats := PriceStats(offers)

	scored := make([]domain.ScoredOffer, len(offers))
	for i, offer := range offers {
		score := ScoreOffer(offer)
		category := CategorizePrice(offer.Price, stats)
		scored[i] = domain.ScoredOffer{
			FlightOffer:    offer,
			Score:          score,
			PriceCategory:  category,
			Recommendation: Recommendation(score, category),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	a.record(scored)
	return scored
}

// ScoreOffer computes the 0-100 heuristic score for a single offer.
func ScoreOffer(offer domain.FlightOffer) int {
	score := scoreBase

	switch {
	case offer.Price < 300:
		score += bonusCheapPrice
	case offer.Price < 500:
		score += bonusMidPrice
	case offer.Price > 800:
		score -= malusHighPrice
	}

	hour := offer.DepartureTime.Hour()
	if (hour >= 8 && hour <= 10) || (hour >= 14 && hour <= 18) {
		score += bonusGoodHours
	} else if hour < 6 || hour > 22 {
		score -= malusOddHours
	}

	switch strings.ToUpper(offer.Airline.Name) {
	case "THY", "TURKISH":
		score += bonusPremium
	case "PEGASUS", "SUNEXPRESS":
		score += bonusBudget
	}

	if offer.AvailableSeats < 10 {
		score -= malusScarceSeats
	} else if offer.AvailableSeats > 30 {
		score += bonusManySeats
	}

	if offer.BaggageIncluded {
		score += bonusBaggage
	}
	if offer.Refundable {
		score += bonusRefundable
	}

	return clampScore(score)
}

// clampScore keeps a score within [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CategorizePrice buckets a price relative to its batch statistics:
// "ucuz" below min + 0.3*(mean-min), "pahalı" above mean + 0.7*(max-mean),
// "orta" otherwise. Categories are therefore not stable across batches.
func CategorizePrice(price int, stats domain.PriceStatistics) domain.PriceCategory {
	if stats.Count == 0 {
		return domain.PriceMid
	}

	p := float64(price)
	if p <= float64(stats.Min)+(stats.Mean-float64(stats.Min))*0.3 {
		return domain.PriceCheap
	}
	if p >= stats.Mean+(float64(stats.Max)-stats.Mean)*0.7 {
		return domain.PriceExpensive
	}
	return domain.PriceMid
}

// Recommendation returns the Turkish recommendation text for a score band
// and price category.
func Recommendation(score int, category domain.PriceCategory) string {
	switch {
	case score >= 80:
		if category == domain.PriceCheap {
			return "🌟 Mükemmel fiyat! Hemen rezervasyon yapın."
		}
		return "✅ Kaliteli seçenek, önerilen uçuş."
	case score >= 60:
		if category == domain.PriceCheap {
			return "💰 İyi fiyat, değerlendirebilirsiniz."
		}
		return "👍 Makul seçenek."
	default:
		if category == domain.PriceExpensive {
			return "💸 Pahalı, alternatif araştırın."
		}
		return "⚠️ Ortalama seçenek."
	}
}

// record appends a batch to the rolling history, evicting oldest entries
// beyond historyLimit.
func (a *Analyzer) record(scored []domain.ScoredOffer) {
	now := a.clock.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, offer := range scored {
		a.history = append(a.history, analyzedRecord{Timestamp: now, Offer: offer})
	}
	if excess := len(a.history) - historyLimit; excess > 0 {
		a.history = append([]analyzedRecord(nil), a.history[excess:]...)
	}
}

// HistoryLen returns the number of records currently held.
func (a *Analyzer) HistoryLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.history)
}
