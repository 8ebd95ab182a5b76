package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/notifier"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/usecase"
)

func newTestDispatcher() *notifier.Dispatcher {
	log := zerolog.Nop()
	senders := []notifier.Sender{
		notifier.NewEmailSender("", 0, "", "", log),
	}
	return notifier.NewDispatcher(senders, nil, log)
}

func alertWatch(t *testing.T, store *memoryStore, maxPrice int) (*domain.User, *domain.SavedSearch) {
	t.Helper()

	users := usecase.NewUserUseCase(store, nil)
	user, err := users.Register(context.Background(), "ayse@example.com", "guvenli-sifre-1", "Ayşe", "Yılmaz")
	require.NoError(t, err)

	watch, err := users.SaveSearch(context.Background(), user.ID, domain.SavedSearch{
		Origin:              "İstanbul",
		Destination:         "Ankara",
		DepartureDate:       "2026-10-10",
		MaxPrice:            maxPrice,
		NotificationEnabled: true,
	})
	require.NoError(t, err)
	return user, watch
}

func TestCheckSavedSearches_SendsAlertBelowTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryStore()
	user, _ := alertWatch(t, store, 400)

	provider := newMockProvider(ctrl, "provider-1")
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.FlightOffer{testOffer("cheap", 350), testOffer("mid", 500)}, nil)

	registry := domain.NewProviderRegistry()
	registry.Register(provider)
	search := usecase.NewSearchUseCase(registry, nil, nil, zerolog.Nop())

	dispatcher := newTestDispatcher()
	checker := usecase.NewAlertChecker(store, search, dispatcher, zerolog.Nop())

	checked, alerted, err := checker.CheckSavedSearches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 1, alerted)

	entries := dispatcher.History(user.Email, 0)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "email", entries[0].Channel)
}

func TestCheckSavedSearches_NoAlertAboveTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemoryStore()
	alertWatch(t, store, 300)

	provider := newMockProvider(ctrl, "provider-1")
	provider.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]domain.FlightOffer{testOffer("pricey", 450)}, nil)

	registry := domain.NewProviderRegistry()
	registry.Register(provider)
	search := usecase.NewSearchUseCase(registry, nil, nil, zerolog.Nop())

	dispatcher := newTestDispatcher()
	checker := usecase.NewAlertChecker(store, search, dispatcher, zerolog.Nop())

	checked, alerted, err := checker.CheckSavedSearches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 0, alerted)
	assert.Equal(t, 0, dispatcher.HistoryLen())
}

func TestCheckSavedSearches_SkipsWatchesWithoutTarget(t *testing.T) {
	store := newMemoryStore()
	alertWatch(t, store, 0)

	registry := domain.NewProviderRegistry()
	search := usecase.NewSearchUseCase(registry, nil, nil, zerolog.Nop())

	checker := usecase.NewAlertChecker(store, search, newTestDispatcher(), zerolog.Nop())

	checked, alerted, err := checker.CheckSavedSearches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, checked)
	assert.Equal(t, 0, alerted)
}

func TestCheckSavedSearches_SearchFailureSkipsWatch(t *testing.T) {
	store := newMemoryStore()
	alertWatch(t, store, 400)

	// No providers registered: SearchOffers fails for this watch.
	registry := domain.NewProviderRegistry()
	search := usecase.NewSearchUseCase(registry, nil, nil, zerolog.Nop())

	checker := usecase.NewAlertChecker(store, search, newTestDispatcher(), zerolog.Nop())

	checked, alerted, err := checker.CheckSavedSearches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 0, alerted)
}
