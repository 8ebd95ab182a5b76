package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// priceSpreadThreshold is the min-to-max spread above which the price
// insight is emitted.
const priceSpreadThreshold = 300

// PriceStats computes the price distribution summary for an offer batch.
// An empty batch produces a zero-value result, not an error.
func PriceStats(offers []domain.FlightOffer) domain.PriceStatistics {
	if len(offers) == 0 {
		return domain.PriceStatistics{}
	}

	prices := make([]int, len(offers))
	sum := 0
	min, max := offers[0].Price, offers[0].Price
	for i, o := range offers {
		prices[i] = o.Price
		sum += o.Price
		if o.Price < min {
			min = o.Price
		}
		if o.Price > max {
			max = o.Price
		}
	}

	return domain.PriceStatistics{
		Min:    min,
		Max:    max,
		Mean:   round2(float64(sum) / float64(len(prices))),
		Median: round2(median(prices)),
		Range:  max - min,
		Count:  len(prices),
	}
}

// median computes the median of a price list without mutating it.
func median(prices []int) float64 {
	sorted := make([]int, len(prices))
	copy(sorted, prices)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TimeAnalysis groups offers into the fixed time-of-day buckets by
// departure hour. Every bucket is present in the result, empty ones with
// zero stats.
func TimeAnalysis(offers []domain.FlightOffer) map[domain.TimeSlot]domain.TimeSlotStats {
	prices := make(map[domain.TimeSlot][]int, len(domain.TimeSlots))
	for _, o := range offers {
		slot := domain.SlotFor(o.DepartureTime.Hour())
		prices[slot] = append(prices[slot], o.Price)
	}

	result := make(map[domain.TimeSlot]domain.TimeSlotStats, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		result[slot] = slotStats(prices[slot])
	}
	return result
}

// slotStats summarizes one bucket's prices.
func slotStats(prices []int) domain.TimeSlotStats {
	if len(prices) == 0 {
		return domain.TimeSlotStats{}
	}

	sum := 0
	min, max := prices[0], prices[0]
	for _, p := range prices {
		sum += p
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return domain.TimeSlotStats{
		Count:    len(prices),
		AvgPrice: round2(float64(sum) / float64(len(prices))),
		MinPrice: min,
		MaxPrice: max,
	}
}

// AirlineAnalysis groups scored offers by airline name.
func AirlineAnalysis(offers []domain.ScoredOffer) map[string]domain.AirlineStats {
	type acc struct {
		prices []int
		scores []int
	}
	grouped := make(map[string]*acc)
	for _, o := range offers {
		name := o.Airline.Name
		if grouped[name] == nil {
			grouped[name] = &acc{}
		}
		grouped[name].prices = append(grouped[name].prices, o.Price)
		grouped[name].scores = append(grouped[name].scores, o.Score)
	}

	result := make(map[string]domain.AirlineStats, len(grouped))
	for name, a := range grouped {
		sum, min, max := 0, a.prices[0], a.prices[0]
		for _, p := range a.prices {
			sum += p
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		scoreSum := 0
		for _, s := range a.scores {
			scoreSum += s
		}
		result[name] = domain.AirlineStats{
			FlightCount: len(a.prices),
			AvgPrice:    round2(float64(sum) / float64(len(a.prices))),
			MinPrice:    min,
			MaxPrice:    max,
			AvgScore:    round2(float64(scoreSum) / float64(len(a.scores))),
		}
	}
	return result
}

// Insights derives natural-language observations from an offer batch:
// a price insight when the spread exceeds 300, a time insight naming the
// cheapest non-empty bucket, and an airline insight naming the cheapest
// airline by mean price when more than one airline is present.
func Insights(offers []domain.FlightOffer) []domain.Insight {
	if len(offers) == 0 {
		return []domain.Insight{}
	}

	insights := []domain.Insight{}

	stats := PriceStats(offers)
	if stats.Range > priceSpreadThreshold {
		insights = append(insights, domain.Insight{
			Type: domain.InsightPrice,
			Message: fmt.Sprintf("Fiyatlar %d TL ile %d TL arasında değişiyor. Büyük fark var!",
				stats.Min, stats.Max),
			Importance: "high",
		})
	}

	if slot, ok := cheapestSlot(TimeAnalysis(offers)); ok {
		insights = append(insights, domain.Insight{
			Type:       domain.InsightTime,
			Message:    fmt.Sprintf("En uygun fiyatlar %s saatlerinde.", slot),
			Importance: "medium",
		})
	}

	if airline, ok := cheapestAirline(offers); ok {
		insights = append(insights, domain.Insight{
			Type:       domain.InsightAirline,
			Message:    fmt.Sprintf("%s havayolu ortalama en uygun fiyatları sunuyor.", airline),
			Importance: "medium",
		})
	}

	return insights
}

// cheapestSlot finds the non-empty bucket with the lowest average price.
// Ties resolve in display order.
func cheapestSlot(slots map[domain.TimeSlot]domain.TimeSlotStats) (domain.TimeSlot, bool) {
	var best domain.TimeSlot
	bestAvg := math.Inf(1)
	for _, slot := range domain.TimeSlots {
		s := slots[slot]
		if s.Count > 0 && s.AvgPrice < bestAvg {
			best = slot
			bestAvg = s.AvgPrice
		}
	}
	return best, !math.IsInf(bestAvg, 1)
}

// cheapestAirline finds the airline with the lowest mean price. It reports
// ok only when the batch contains more than one airline. Ties resolve in
// encounter order.
func cheapestAirline(offers []domain.FlightOffer) (string, bool) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	var order []string
	for _, o := range offers {
		name := o.Airline.Name
		if counts[name] == 0 {
			order = append(order, name)
		}
		sums[name] += o.Price
		counts[name]++
	}

	if len(order) < 2 {
		return "", false
	}

	best := ""
	bestAvg := math.Inf(1)
	for _, name := range order {
		avg := float64(sums[name]) / float64(counts[name])
		if avg < bestAvg {
			best = name
			bestAvg = avg
		}
	}
	return best, true
}
