// Package integration provides helpers and integration tests for the flight
// ticket search system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, storage and providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	ucakhttp "github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/adapter/http"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/storage/sqlite"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/test/testutil"
)

// TestServer wraps an Echo instance with the full application stack wired
// against the given providers and an in-memory database.
type TestServer struct {
	Echo       *echo.Echo
	Store      *sqlite.Store
	Search     usecase.SearchUseCase
	Dispatcher *notifier.Dispatcher
}

// NewTestServer builds a server with real use cases, an in-memory SQLite
// store and the given offer providers.
func NewTestServer(t *testing.T, providers ...domain.OfferProvider) *TestServer {
	t.Helper()

	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}

	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := zerolog.Nop()
	search := usecase.NewSearchUseCase(registry, nil, nil, log)
	analyzer := usecase.NewAnalyzer(nil)
	users := usecase.NewUserUseCase(store, nil)
	dispatcher := notifier.NewDispatcher([]notifier.Sender{
		notifier.NewEmailSender("", 0, "", "", log),
		notifier.NewSMSSender(log),
		notifier.NewPushSender(log),
	}, nil, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := ucakhttp.NewHandler(search, analyzer, users, dispatcher, nil)
	ucakhttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:       e,
		Store:      store,
		Search:     search,
		Dispatcher: dispatcher,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseJSON unmarshals the response body into a generic map.
func (r *Response) ParseJSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &result))
	return result
}

// ParseEnvelope unmarshals a success envelope and returns its data field.
func (r *Response) ParseEnvelope(t *testing.T) map[string]interface{} {
	t.Helper()
	result := r.ParseJSON(t)
	require.Equal(t, true, result["success"], "expected success envelope, got: %s", string(r.Body))
	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok, "expected data object, got: %s", string(r.Body))
	return data
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	ReturnDate  string `json:"return_date,omitempty"`
	MaxPrice    int    `json:"max_price,omitempty"`
	Airline     string `json:"airline,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Departure:   "İstanbul",
		Destination: "Ankara",
		Date:        testutil.FutureDate(),
	}
}
