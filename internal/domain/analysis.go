package domain

import "time"

// PriceStatistics summarizes the price distribution of an offer batch.
// A zero-value PriceStatistics (Count == 0) stands for an empty batch.
type PriceStatistics struct {
	Min    int     `json:"min_price"`
	Max    int     `json:"max_price"`
	Mean   float64 `json:"avg_price"`
	Median float64 `json:"median_price"`
	Range  int     `json:"price_range"`
	Count  int     `json:"total_flights"`
}

// TimeSlot is one of the fixed time-of-day buckets.
type TimeSlot string

// Time-of-day buckets with their hour edges.
const (
	SlotMorning TimeSlot = "sabah" // [06:00, 12:00)
	SlotMidday  TimeSlot = "öğlen" // [12:00, 18:00)
	SlotEvening TimeSlot = "akşam" // [18:00, 24:00)
	SlotNight   TimeSlot = "gece"  // [00:00, 06:00)
)

// TimeSlots lists the buckets in display order. The order also breaks ties
// when two buckets have equal average prices.
var TimeSlots = []TimeSlot{SlotMorning, SlotMidday, SlotEvening, SlotNight}

// SlotFor returns the bucket a departure hour falls into.
func SlotFor(hour int) TimeSlot {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotMidday
	case hour >= 18 && hour < 24:
		return SlotEvening
	default:
		return SlotNight
	}
}

// TimeSlotStats aggregates offers departing within one time bucket.
type TimeSlotStats struct {
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
	MinPrice int     `json:"min_price"`
	MaxPrice int     `json:"max_price"`
}

// AirlineStats aggregates offers of a single airline.
type AirlineStats struct {
	FlightCount int     `json:"flight_count"`
	AvgPrice    float64 `json:"avg_price"`
	MinPrice    int     `json:"min_price"`
	MaxPrice    int     `json:"max_price"`
	AvgScore    float64 `json:"avg_score"`
}

// InsightType classifies an insight message.
type InsightType string

// Insight types.
const (
	InsightPrice   InsightType = "price"
	InsightTime    InsightType = "time"
	InsightAirline InsightType = "airline"
)

// Insight is a natural-language observation about an offer batch.
type Insight struct {
	Type       InsightType `json:"type"`
	Message    string      `json:"message"`
	Importance string      `json:"importance"`
}

// NotificationLogEntry records one dispatch attempt, successful or not.
type NotificationLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Success   bool      `json:"success"`
}
