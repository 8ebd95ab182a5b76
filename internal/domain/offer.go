// Package domain contains the core business entities and rules for the
// flight ticket search system. These entities are provider-agnostic and form
// the foundation upon which all other components are built.
package domain

import "time"

// FlightOffer represents a single flight offering produced by a provider.
// An offer is immutable once generated; derived data (scores, categories)
// lives on ScoredOffer copies.
type FlightOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Provider identifies which flight provider this offer came from
	Provider string `json:"provider"`

	// Airline contains information about the operating airline
	Airline AirlineInfo `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "PC734")
	FlightNumber string `json:"flight_number"`

	// Origin is the IATA code of the departure airport (e.g., "IST")
	Origin string `json:"departure_airport"`

	// Destination is the IATA code of the arrival airport (e.g., "ESB")
	Destination string `json:"destination_airport"`

	// DepartureTime is the scheduled departure time
	DepartureTime time.Time `json:"departure_time"`

	// ArrivalTime is the scheduled arrival time
	ArrivalTime time.Time `json:"arrival_time"`

	// DurationMinutes is the total flight duration in minutes
	DurationMinutes int `json:"duration_minutes"`

	// Price is the ticket price in whole units of Currency
	Price int `json:"price"`

	// Currency is the price currency code (always "TRY" for domestic offers)
	Currency string `json:"currency"`

	// AvailableSeats is the number of seats left at this price
	AvailableSeats int `json:"available_seats"`

	// BookingURL points at the airline's booking page for this route
	BookingURL string `json:"booking_url"`

	// BaggageIncluded reports whether checked baggage is part of the fare
	BaggageIncluded bool `json:"baggage_included"`

	// Refundable reports whether the fare can be refunded
	Refundable bool `json:"refundable"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "PC" for Pegasus)
	Code string `json:"code"`

	// Name is the airline display name (e.g., "Pegasus")
	Name string `json:"name"`
}

// PriceCategory is a batch-relative price bucket. The labels are the Turkish
// ones the product surfaces to users.
type PriceCategory string

// Price categories, relative to the current offer batch.
const (
	PriceCheap     PriceCategory = "ucuz"
	PriceMid       PriceCategory = "orta"
	PriceExpensive PriceCategory = "pahalı"
)

// ScoredOffer is a FlightOffer enriched with analysis results.
// It is always a copy; analysis never mutates the source offer.
type ScoredOffer struct {
	FlightOffer

	// Score is the 0-100 heuristic ranking value
	Score int `json:"score"`

	// PriceCategory is the batch-relative price bucket
	PriceCategory PriceCategory `json:"price_category"`

	// Recommendation is a short Turkish recommendation text
	Recommendation string `json:"recommendation"`
}

// Route describes a popular route with its typical price level.
type Route struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	AvgPrice    int    `json:"avg_price"`
}

// TrendPoint is one day in a price trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}
