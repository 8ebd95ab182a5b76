package http

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/http/response"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/pkg/metrics"
)

// userIDHeader carries the acting user's ID. Stands in for session auth.
const userIDHeader = "X-User-ID"

// Handler handles HTTP requests for the flight ticket API.
type Handler struct {
	search     usecase.SearchUseCase
	analyzer   *usecase.Analyzer
	users      *usecase.UserUseCase
	dispatcher *notifier.Dispatcher
	metrics    *metrics.Metrics
}

// NewHandler creates a Handler. metrics may be nil, in which case no
// counters are updated.
func NewHandler(search usecase.SearchUseCase, analyzer *usecase.Analyzer, users *usecase.UserUseCase, dispatcher *notifier.Dispatcher, m *metrics.Metrics) *Handler {
	return &Handler{
		search:     search,
		analyzer:   analyzer,
		users:      users,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// ListFlights handles GET /api/v1/flights
//
// @Summary List flight offers
// @Description Search flights by query parameters, sorted by ascending price
// @Tags flights
// @Produce json
// @Param departure query string true "Departure city or airport code"
// @Param destination query string true "Destination city or airport code"
// @Param date query string true "Departure date (YYYY-MM-DD)"
// @Param return_date query string false "Return date (YYYY-MM-DD)"
// @Param max_price query int false "Maximum price"
// @Param airline query string false "Airline code or name"
// @Success 200 {object} FlightListResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/flights [get]
func (h *Handler) ListFlights(c echo.Context) error {
	req := SearchFlightsRequest{
		Departure:   c.QueryParam("departure"),
		Destination: c.QueryParam("destination"),
		Date:        c.QueryParam("date"),
		ReturnDate:  c.QueryParam("return_date"),
		Airline:     c.QueryParam("airline"),
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "max_price sayı olmalıdır")
		}
		req.MaxPrice = maxPrice
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	offers, err := h.searchOffers(c, req.Query())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &FlightListResponse{Flights: toOfferDTOs(offers)})
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search and analyze flights
// @Description Search flights and return scored offers with price statistics and insights
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.searchOffers(c, req.Query())
	if err != nil {
		return h.handleError(c, err)
	}

	scored := h.analyzer.AnalyzeOffers(offers)

	payload := &SearchAnalysisResponse{
		Flights:         toScoredDTOs(scored),
		Statistics:      usecase.PriceStats(offers),
		TimeAnalysis:    usecase.TimeAnalysis(offers),
		AirlineAnalysis: usecase.AirlineAnalysis(scored),
		Insights:        usecase.Insights(offers),
	}
	return response.OK(c, response.Success(payload))
}

// searchOffers runs a search and updates the search metrics.
func (h *Handler) searchOffers(c echo.Context, query domain.SearchQuery) ([]domain.FlightOffer, error) {
	start := time.Now()
	offers, err := h.search.SearchOffers(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	if h.metrics != nil {
		h.metrics.SearchesTotal.Inc()
		h.metrics.OffersReturned.Add(float64(len(offers)))
		h.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}
	return offers, nil
}

// PopularRoutes handles GET /api/v1/routes/popular
//
// @Summary Popular routes
// @Tags flights
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/routes/popular [get]
func (h *Handler) PopularRoutes(c echo.Context) error {
	return response.OK(c, map[string]interface{}{
		"routes": h.search.PopularRoutes(),
	})
}

// PriceTrends handles GET /api/v1/trends
//
// @Summary Price trend series
// @Tags flights
// @Produce json
// @Param departure query string true "Departure city"
// @Param destination query string true "Destination city"
// @Param days query int false "Number of days (default 30)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/trends [get]
func (h *Handler) PriceTrends(c echo.Context) error {
	departure := c.QueryParam("departure")
	destination := c.QueryParam("destination")
	if departure == "" || destination == "" {
		return response.BadRequest(c, "departure ve destination gereklidir")
	}

	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			return response.BadRequest(c, "days 1 ile 90 arasında olmalıdır")
		}
		days = parsed
	}

	return response.OK(c, map[string]interface{}{
		"departure":   departure,
		"destination": destination,
		"trends":      h.search.PriceTrends(departure, destination, days),
	})
}

// Register handles POST /api/v1/auth/register
//
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorDetail
// @Failure 409 {object} response.ErrorDetail "Email already registered"
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	user, err := h.users.Register(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return response.Conflict(c, "Bu email adresi zaten kullanımda")
		}
		return h.handleError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RegisteredUsers.Inc()
	}
	return response.Created(c, response.Success(toUserDTO(user)))
}

// Login handles POST /api/v1/auth/login
//
// @Summary Log a user in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorDetail "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Email veya şifre hatalı")
		}
		return h.handleError(c, err)
	}

	return response.OK(c, response.Success(toUserDTO(user)))
}

// SaveSearch handles POST /api/v1/searches
//
// @Summary Save a search for tracking
// @Tags searches
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Param request body SavedSearchRequest true "Search criteria"
// @Success 201 {object} response.Response
// @Failure 401 {object} response.ErrorDetail
// @Router /api/v1/searches [post]
func (h *Handler) SaveSearch(c echo.Context) error {
	userID := c.Request().Header.Get(userIDHeader)
	if userID == "" {
		return response.Unauthorized(c, "X-User-ID başlığı gereklidir")
	}

	var req SavedSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	saved, err := h.users.SaveSearch(c.Request().Context(), userID, req.SavedSearch())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Unauthorized(c, "Kullanıcı bulunamadı")
		}
		return h.handleError(c, err)
	}

	// Price watches get a confirmation email.
	if saved.NotificationEnabled && saved.MaxPrice > 0 {
		if user, lookupErr := h.users.User(c.Request().Context(), userID); lookupErr == nil {
			h.dispatcher.SendWatchConfirmation(c.Request().Context(), user.Email, *saved)
		}
	}

	return response.Created(c, response.Success(saved))
}

// ListSearches handles GET /api/v1/searches
//
// @Summary List the user's saved searches
// @Tags searches
// @Produce json
// @Param X-User-ID header string true "Acting user ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorDetail
// @Router /api/v1/searches [get]
func (h *Handler) ListSearches(c echo.Context) error {
	userID := c.Request().Header.Get(userIDHeader)
	if userID == "" {
		return response.Unauthorized(c, "X-User-ID başlığı gereklidir")
	}

	searches, err := h.users.SavedSearches(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}
	if searches == nil {
		searches = []domain.SavedSearch{}
	}

	return response.OK(c, response.Success(searches))
}

// DeleteSearch handles DELETE /api/v1/searches/:id
//
// @Summary Deactivate a saved search
// @Tags searches
// @Param X-User-ID header string true "Acting user ID"
// @Param id path string true "Saved search ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail
// @Router /api/v1/searches/{id} [delete]
func (h *Handler) DeleteSearch(c echo.Context) error {
	userID := c.Request().Header.Get(userIDHeader)
	if userID == "" {
		return response.Unauthorized(c, "X-User-ID başlığı gereklidir")
	}

	err := h.users.DeactivateSearch(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrSearchNotFound) {
			return response.NotFound(c, "Kayıtlı arama bulunamadı")
		}
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// Notify handles POST /api/v1/notify
//
// @Summary Send a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body NotifyRequest true "Notification"
// @Success 200 {object} NotifyResponse
// @Failure 400 {object} response.ErrorDetail
// @Router /api/v1/notify [post]
func (h *Handler) Notify(c echo.Context) error {
	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	sent := h.dispatcher.Send(c.Request().Context(), req.Recipient, req.Message, notifier.Channel(req.Channel), req.Subject)

	if h.metrics != nil {
		status := "failed"
		if sent {
			status = "sent"
		}
		h.metrics.Notifications.WithLabelValues(req.Channel, status).Inc()
	}

	return response.OK(c, &NotifyResponse{Sent: sent})
}

// NotificationHistory handles GET /api/v1/notifications/history
//
// @Summary Recent notification attempts
// @Tags notifications
// @Produce json
// @Param recipient query string false "Filter by recipient"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/notifications/history [get]
func (h *Handler) NotificationHistory(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "limit negatif olmayan bir sayı olmalıdır")
		}
		limit = parsed
	}

	entries := h.dispatcher.History(c.QueryParam("recipient"), limit)
	return response.OK(c, map[string]interface{}{
		"notifications": entries,
		"count":         len(entries),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrAllProvidersFailed) {
		return response.ServiceUnavailable(c)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	return response.InternalServerError(c)
}
