package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

// UserStore is the persistence boundary for users and saved searches.
// Implemented by the sqlite store.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	SaveSearch(ctx context.Context, search *domain.SavedSearch) error
	SearchesByUser(ctx context.Context, userID string) ([]domain.SavedSearch, error)
	ActiveWatches(ctx context.Context) ([]domain.SavedSearch, error)
	DeactivateSearch(ctx context.Context, id, userID string) error
}

// UserUseCase handles registration, login and saved searches.
type UserUseCase struct {
	store UserStore
	clock timeutil.Clock
}

// NewUserUseCase creates a UserUseCase. A nil clock falls back to the real
// clock.
func NewUserUseCase(store UserStore, clock timeutil.Clock) *UserUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &UserUseCase{store: store, clock: clock}
}

// Register creates a new user account. A duplicate email fails with
// domain.ErrEmailTaken. Email format and password strength are assumed to be
// validated at the transport layer.
func (uc *UserUseCase) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := uc.store.UserByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    uc.clock.Now(),
	}

	if err := uc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password and records the login
// time. Wrong email and wrong password are indistinguishable to the caller:
// both return domain.ErrInvalidCredentials.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.store.UserByEmail(ctx, email)
	if err != nil || user == nil || !user.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.clock.Now()
	if err := uc.store.UpdateLastLogin(ctx, user.ID, now); err == nil {
		user.LastLogin = now
	}
	return user, nil
}

// SaveSearch stores a search for later tracking.
func (uc *UserUseCase) SaveSearch(ctx context.Context, userID string, search domain.SavedSearch) (*domain.SavedSearch, error) {
	if _, err := uc.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}

	search.ID = uuid.New().String()
	search.UserID = userID
	if search.Passengers < 1 {
		search.Passengers = 1
	}
	search.Active = true
	search.CreatedAt = uc.clock.Now()

	if err := uc.store.SaveSearch(ctx, &search); err != nil {
		return nil, err
	}
	return &search, nil
}

// User looks up a user by ID.
func (uc *UserUseCase) User(ctx context.Context, id string) (*domain.User, error) {
	return uc.store.UserByID(ctx, id)
}

// SavedSearches lists a user's saved searches, newest first.
func (uc *UserUseCase) SavedSearches(ctx context.Context, userID string) ([]domain.SavedSearch, error) {
	return uc.store.SearchesByUser(ctx, userID)
}

// DeactivateSearch deactivates one of the user's saved searches.
func (uc *UserUseCase) DeactivateSearch(ctx context.Context, id, userID string) error {
	return uc.store.DeactivateSearch(ctx, id, userID)
}
