// Package http provides the HTTP handler layer for the flight ticket API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
)

// datePattern matches YYYY-MM-DD dates.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// SearchFlightsRequest represents the request body for the analyzed search.
type SearchFlightsRequest struct {
	// Departure is a city name or IATA airport code (e.g., "İstanbul", "IST")
	Departure string `json:"departure"`

	// Destination is a city name or IATA airport code
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// ReturnDate is an optional return date in YYYY-MM-DD format
	ReturnDate string `json:"return_date,omitempty"`

	// MaxPrice filters out offers above this price (optional)
	MaxPrice int `json:"max_price,omitempty"`

	// Airline filters by airline code or name (optional)
	Airline string `json:"airline,omitempty"`
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Departure == "" {
		errs.Add("departure", "Kalkış şehri gereklidir")
	}
	if r.Destination == "" {
		errs.Add("destination", "Varış şehri gereklidir")
	}
	if r.Date == "" {
		errs.Add("date", "Tarih gereklidir")
	} else if !validDate(r.Date) {
		errs.Add("date", "Tarih YYYY-MM-DD formatında olmalıdır")
	}
	if r.ReturnDate != "" && !validDate(r.ReturnDate) {
		errs.Add("return_date", "Dönüş tarihi YYYY-MM-DD formatında olmalıdır")
	}
	if r.MaxPrice < 0 {
		errs.Add("max_price", "Maksimum fiyat negatif olamaz")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Query converts the request to a domain search query.
func (r *SearchFlightsRequest) Query() domain.SearchQuery {
	return domain.SearchQuery{
		Departure:   r.Departure,
		Destination: r.Destination,
		Date:        r.Date,
		ReturnDate:  r.ReturnDate,
		MaxPrice:    r.MaxPrice,
		Airline:     r.Airline,
	}
}

// validDate reports whether a date string is a real YYYY-MM-DD date.
func validDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(domain.DateLayout, date)
	return err == nil
}

// RegisterRequest represents the user registration request body.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate validates the registration request.
func (r *RegisterRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Email == "" {
		errs.Add("email", "Email adresi gereklidir")
	} else if !domain.ValidateEmail(r.Email) {
		errs.Add("email", "Geçersiz email adresi")
	}

	if r.Password == "" {
		errs.Add("password", "Şifre gereklidir")
	} else if problems := domain.ValidatePassword(r.Password); len(problems) > 0 {
		errs.Add("password", problems[0])
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request.
func (r *LoginRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Email == "" {
		errs.Add("email", "Email adresi gereklidir")
	}
	if r.Password == "" {
		errs.Add("password", "Şifre gereklidir")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SavedSearchRequest represents the request body for saving a search.
type SavedSearchRequest struct {
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	DepartureDate       string `json:"departure_date"`
	ReturnDate          string `json:"return_date,omitempty"`
	Passengers          int    `json:"passengers,omitempty"`
	MaxPrice            int    `json:"max_price,omitempty"`
	AirlinePreference   string `json:"airline_preference,omitempty"`
	NotificationEnabled bool   `json:"notification_enabled"`
}

// Validate validates the saved-search request.
func (r *SavedSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.Add("origin", "Kalkış şehri gereklidir")
	}
	if r.Destination == "" {
		errs.Add("destination", "Varış şehri gereklidir")
	}
	if r.DepartureDate == "" {
		errs.Add("departure_date", "Tarih gereklidir")
	} else if !validDate(r.DepartureDate) {
		errs.Add("departure_date", "Tarih YYYY-MM-DD formatında olmalıdır")
	}
	if r.ReturnDate != "" && !validDate(r.ReturnDate) {
		errs.Add("return_date", "Dönüş tarihi YYYY-MM-DD formatında olmalıdır")
	}
	if r.Passengers < 0 || r.Passengers > 9 {
		errs.Add("passengers", "Yolcu sayısı 1 ile 9 arasında olmalıdır")
	}
	if r.MaxPrice < 0 {
		errs.Add("max_price", "Maksimum fiyat negatif olamaz")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SavedSearch converts the request to a domain saved search.
func (r *SavedSearchRequest) SavedSearch() domain.SavedSearch {
	return domain.SavedSearch{
		Origin:              r.Origin,
		Destination:         r.Destination,
		DepartureDate:       r.DepartureDate,
		ReturnDate:          r.ReturnDate,
		Passengers:          r.Passengers,
		MaxPrice:            r.MaxPrice,
		AirlinePreference:   r.AirlinePreference,
		NotificationEnabled: r.NotificationEnabled,
	}
}

// NotifyRequest represents the manual notification request body.
type NotifyRequest struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Channel   string `json:"channel"`
	Subject   string `json:"subject,omitempty"`
}

// Validate validates the notification request.
func (r *NotifyRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Recipient == "" {
		errs.Add("recipient", "Alıcı gereklidir")
	}
	if r.Message == "" {
		errs.Add("message", "Mesaj gereklidir")
	}
	if r.Channel == "" {
		errs.Add("channel", "Bildirim kanalı gereklidir")
	} else if !notifier.ValidChannel(r.Channel) {
		errs.Add("channel", "Bildirim kanalı email, sms veya push olmalıdır")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
