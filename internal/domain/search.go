package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for dates throughout the API.
const DateLayout = "2006-01-02"

// SearchQuery defines the parameters for a flight search.
type SearchQuery struct {
	// Departure is the origin city name or IATA code (e.g., "İstanbul", "IST")
	Departure string `json:"departure"`

	// Destination is the target city name or IATA code
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"return_date,omitempty"`

	// MaxPrice drops offers above this price when > 0
	MaxPrice int `json:"max_price,omitempty"`

	// Airline keeps only offers from this airline (code or name) when set
	Airline string `json:"airline,omitempty"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search query is well formed.
// Returns a wrapped ErrInvalidRequest error if validation fails.
// Note that an unknown city name is not a validation error: per the search
// contract it produces an empty result instead.
func (q *SearchQuery) Validate() error {
	if strings.TrimSpace(q.Departure) == "" {
		return fmt.Errorf("%w: departure is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(q.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if q.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(q.Date) {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.Date)
	}
	if _, err := time.Parse(DateLayout, q.Date); err != nil {
		return fmt.Errorf("%w: date is not a valid date: %s", ErrInvalidRequest, q.Date)
	}
	if q.ReturnDate != "" {
		if !dateRegex.MatchString(q.ReturnDate) {
			return fmt.Errorf("%w: return_date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.ReturnDate)
		}
		if _, err := time.Parse(DateLayout, q.ReturnDate); err != nil {
			return fmt.Errorf("%w: return_date is not a valid date: %s", ErrInvalidRequest, q.ReturnDate)
		}
		if q.ReturnDate < q.Date {
			return fmt.Errorf("%w: return_date must not be before date", ErrInvalidRequest)
		}
	}
	if q.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must not be negative", ErrInvalidRequest)
	}
	return nil
}

// Key returns a stable cache key for this query. Two queries with the same
// key are guaranteed to describe the same search.
func (q *SearchQuery) Key() string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.Departure)),
		strings.ToLower(strings.TrimSpace(q.Destination)),
		q.Date,
		q.ReturnDate,
		fmt.Sprintf("%d", q.MaxPrice),
		strings.ToLower(strings.TrimSpace(q.Airline)),
	}
	return strings.Join(parts, "|")
}
