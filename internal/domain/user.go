package domain

import (
	"regexp"
	"strings"
	"time"
)

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SavedSearch is a search a user asked the system to keep and watch.
type SavedSearch struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Origin              string    `json:"origin"`
	Destination         string    `json:"destination"`
	DepartureDate       string    `json:"departure_date"`
	ReturnDate          string    `json:"return_date,omitempty"`
	Passengers          int       `json:"passengers"`
	MaxPrice            int       `json:"max_price,omitempty"`
	AirlinePreference   string    `json:"airline_preference,omitempty"`
	NotificationEnabled bool      `json:"notification_enabled"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
}

// Query converts the saved search to a runnable search query.
func (s *SavedSearch) Query() SearchQuery {
	return SearchQuery{
		Departure:   s.Origin,
		Destination: s.Destination,
		Date:        s.DepartureDate,
		ReturnDate:  s.ReturnDate,
		MaxPrice:    s.MaxPrice,
		Airline:     s.AirlinePreference,
	}
}

// emailRegex matches reasonable email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// passwordSpecialRegex matches the accepted special characters.
var passwordSpecialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// commonPasswords are rejected outright regardless of composition.
var commonPasswords = map[string]bool{
	"12345678":    true,
	"password":    true,
	"123456789":   true,
	"qwerty123":   true,
	"abc123456":   true,
	"password123": true,
	"12345abc":    true,
}

// ValidateEmail reports whether the email has a valid format.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength and returns the list of unmet
// requirements as Turkish user-facing messages. An empty slice means the
// password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "Şifre en az 8 karakter olmalıdır.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "Şifre en az bir büyük harf içermelidir.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "Şifre en az bir küçük harf içermelidir.")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "Şifre en az bir rakam içermelidir.")
	}
	if !passwordSpecialRegex.MatchString(password) {
		errs = append(errs, "Şifre en az bir özel karakter içermelidir.")
	}
	if commonPasswords[strings.ToLower(password)] {
		errs = append(errs, "Bu şifre çok yaygın kullanılmaktadır. Daha güçlü bir şifre seçin.")
	}

	return errs
}
