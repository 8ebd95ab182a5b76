package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/test/mock"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/test/testutil"
)

const (
	testEmail    = "ayse@example.com"
	testPassword = "Gizli.Sifre1"
)

// registerBody is the request payload for the register endpoint.
type registerBody struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// savedSearchBody is the request payload for saving a search.
type savedSearchBody struct {
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	DepartureDate       string `json:"departure_date"`
	MaxPrice            int    `json:"max_price,omitempty"`
	NotificationEnabled bool   `json:"notification_enabled"`
}

// register creates a user through the API and returns its ID.
func register(t *testing.T, ts *TestServer) string {
	t.Helper()

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/register",
		Body: registerBody{
			Email:     testEmail,
			Password:  testPassword,
			FirstName: "Ayşe",
			LastName:  "Yılmaz",
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code, "register failed: %s", string(resp.Body))

	data := resp.ParseEnvelope(t)
	id, ok := data["id"].(string)
	require.True(t, ok)
	return id
}

// TestJourney_RegisterAndLogin walks the register/login flow through HTTP.
func TestJourney_RegisterAndLogin(t *testing.T) {
	ts := NewTestServer(t, mock.NewProvider("pegasus"))

	register(t, ts)

	// Duplicate registration is rejected.
	dup := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/register",
		Body: registerBody{
			Email:     testEmail,
			Password:  testPassword,
			FirstName: "Ayşe",
			LastName:  "Yılmaz",
		},
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	login := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		Body:   map[string]string{"email": testEmail, "password": testPassword},
	})
	require.Equal(t, http.StatusOK, login.Code)

	data := login.ParseEnvelope(t)
	assert.Equal(t, testEmail, data["email"])
	assert.Equal(t, "Ayşe Yılmaz", data["full_name"])

	wrong := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		Body:   map[string]string{"email": testEmail, "password": "yanlış-şifre"},
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
}

// TestJourney_SavedSearchLifecycle covers create, list and deactivate.
func TestJourney_SavedSearchLifecycle(t *testing.T) {
	ts := NewTestServer(t, mock.NewProvider("pegasus"))
	userID := register(t, ts)
	headers := map[string]string{"X-User-ID": userID}

	// Missing user header is rejected.
	anon := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/searches",
	})
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	created := ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/searches",
		Headers: headers,
		Body: savedSearchBody{
			Origin:              "İstanbul",
			Destination:         "Ankara",
			DepartureDate:       testutil.FutureDate(),
			MaxPrice:            500,
			NotificationEnabled: true,
		},
	})
	require.Equal(t, http.StatusCreated, created.Code, "save search failed: %s", string(created.Body))
	searchID := created.ParseEnvelope(t)["id"].(string)

	list := ts.Do(Request{
		Method:  http.MethodGet,
		Path:    "/api/v1/searches",
		Headers: headers,
	})
	require.Equal(t, http.StatusOK, list.Code)
	body := list.ParseJSON(t)
	searches := body["data"].([]interface{})
	assert.Len(t, searches, 1)

	deleted := ts.Do(Request{
		Method:  http.MethodDelete,
		Path:    "/api/v1/searches/" + searchID,
		Headers: headers,
	})
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	again := ts.Do(Request{
		Method:  http.MethodDelete,
		Path:    "/api/v1/searches/" + searchID,
		Headers: headers,
	})
	assert.Equal(t, http.StatusNotFound, again.Code)
}

// TestJourney_PriceAlert exercises the full alert pipeline: a saved search
// with a price target, a matching cheap offer and a dispatched email.
func TestJourney_PriceAlert(t *testing.T) {
	provider := mock.NewProvider("pegasus").WithOffers(mock.SampleOffers("pegasus", 3))
	ts := NewTestServer(t, provider)
	userID := register(t, ts)

	created := ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/searches",
		Headers: map[string]string{"X-User-ID": userID},
		Body: savedSearchBody{
			Origin:              "İstanbul",
			Destination:         "Ankara",
			DepartureDate:       testutil.FutureDate(),
			MaxPrice:            500, // cheapest sample offer is 450
			NotificationEnabled: true,
		},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	checker := usecase.NewAlertChecker(ts.Store, ts.Search, ts.Dispatcher, zerolog.Nop())
	checked, alerted, err := checker.CheckSavedSearches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 1, alerted)

	// Watch confirmation at creation, then the alert itself.
	history := ts.Dispatcher.History(testEmail, 10)
	require.Len(t, history, 2)
	assert.Contains(t, history[0].Message, "Fiyat takibiniz başarıyla oluşturuldu")
	alert := history[1]
	assert.True(t, alert.Success)
	assert.Equal(t, string(notifier.ChannelEmail), alert.Channel)
	assert.Contains(t, alert.Message, "fiyat düşüşü tespit edildi")
}

// TestJourney_NotifyAndHistory sends a notification through the API and
// reads it back from the history endpoint.
func TestJourney_NotifyAndHistory(t *testing.T) {
	ts := NewTestServer(t, mock.NewProvider("pegasus"))

	sent := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/notify",
		Body: map[string]string{
			"recipient": "+905551112233",
			"message":   "Uçuşunuz yarın 09:00'da kalkıyor.",
			"channel":   "sms",
		},
	})
	require.Equal(t, http.StatusOK, sent.Code)
	assert.Equal(t, true, sent.ParseJSON(t)["sent"])

	history := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/notifications/history?recipient=%2B905551112233",
	})
	require.Equal(t, http.StatusOK, history.Code)
	body := history.ParseJSON(t)
	entries := body["notifications"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, float64(1), body["count"])
}
