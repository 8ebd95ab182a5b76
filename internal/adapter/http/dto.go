package http

import (
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/format"
)

// FlightOfferDTO is the wire representation of a flight offer. Prices,
// durations and times carry pre-formatted Turkish display strings next to
// the raw values.
type FlightOfferDTO struct {
	ID                 string `json:"id"`
	Provider           string `json:"provider"`
	AirlineCode        string `json:"airline_code"`
	AirlineName        string `json:"airline_name"`
	FlightNumber       string `json:"flight_number"`
	DepartureAirport   string `json:"departure_airport"`
	DestinationAirport string `json:"destination_airport"`
	DepartureTime      string `json:"departure_time"`
	ArrivalTime        string `json:"arrival_time"`
	TimeRange          string `json:"time_range"`
	DurationMinutes    int    `json:"duration_minutes"`
	DurationFormatted  string `json:"duration_formatted"`
	Price              int    `json:"price"`
	PriceFormatted     string `json:"price_formatted"`
	Currency           string `json:"currency"`
	AvailableSeats     int    `json:"available_seats"`
	BookingURL         string `json:"booking_url,omitempty"`
	BaggageIncluded    bool   `json:"baggage_included"`
	Refundable         bool   `json:"refundable"`
}

// ScoredOfferDTO extends FlightOfferDTO with analysis results.
type ScoredOfferDTO struct {
	FlightOfferDTO
	Score          int    `json:"score"`
	PriceCategory  string `json:"price_category"`
	Recommendation string `json:"recommendation"`
}

// toOfferDTO converts a domain offer to its wire representation.
func toOfferDTO(offer domain.FlightOffer) FlightOfferDTO {
	return FlightOfferDTO{
		ID:                 offer.ID,
		Provider:           offer.Provider,
		AirlineCode:        offer.Airline.Code,
		AirlineName:        offer.Airline.Name,
		FlightNumber:       offer.FlightNumber,
		DepartureAirport:   offer.Origin,
		DestinationAirport: offer.Destination,
		DepartureTime:      format.DateTime(offer.DepartureTime, format.StyleShort),
		ArrivalTime:        format.DateTime(offer.ArrivalTime, format.StyleShort),
		TimeRange:          format.TimeRange(offer.DepartureTime, offer.ArrivalTime),
		DurationMinutes:    offer.DurationMinutes,
		DurationFormatted:  format.Duration(offer.DurationMinutes),
		Price:              offer.Price,
		PriceFormatted:     format.Currency(float64(offer.Price), offer.Currency),
		Currency:           offer.Currency,
		AvailableSeats:     offer.AvailableSeats,
		BookingURL:         offer.BookingURL,
		BaggageIncluded:    offer.BaggageIncluded,
		Refundable:         offer.Refundable,
	}
}

// toOfferDTOs converts a batch of offers.
func toOfferDTOs(offers []domain.FlightOffer) []FlightOfferDTO {
	result := make([]FlightOfferDTO, len(offers))
	for i, offer := range offers {
		result[i] = toOfferDTO(offer)
	}
	return result
}

// toScoredDTOs converts a batch of scored offers.
func toScoredDTOs(offers []domain.ScoredOffer) []ScoredOfferDTO {
	result := make([]ScoredOfferDTO, len(offers))
	for i, offer := range offers {
		result[i] = ScoredOfferDTO{
			FlightOfferDTO: toOfferDTO(offer.FlightOffer),
			Score:          offer.Score,
			PriceCategory:  string(offer.PriceCategory),
			Recommendation: offer.Recommendation,
		}
	}
	return result
}

// FlightListResponse is the flat response of the flight listing endpoint.
type FlightListResponse struct {
	Flights []FlightOfferDTO `json:"flights"`
}

// SearchAnalysisResponse is the payload of the analyzed search endpoint.
type SearchAnalysisResponse struct {
	Flights         []ScoredOfferDTO                          `json:"flights"`
	Statistics      domain.PriceStatistics                    `json:"statistics"`
	TimeAnalysis    map[domain.TimeSlot]domain.TimeSlotStats  `json:"time_analysis"`
	AirlineAnalysis map[string]domain.AirlineStats            `json:"airline_analysis"`
	Insights        []domain.Insight                          `json:"insights"`
}

// UserDTO is the wire representation of a user account.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

// toUserDTO converts a domain user to its wire representation.
func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		CreatedAt: format.DateTime(user.CreatedAt, format.StyleShort),
	}
}

// NotifyResponse reports whether a manual notification went out.
type NotifyResponse struct {
	Sent bool `json:"sent"`
}
