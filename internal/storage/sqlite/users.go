package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// CreateUser inserts a new user. A duplicate email maps to
// domain.ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, first_name, last_name, password_hash, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, user.Active, user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UserByEmail looks a user up by email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, password_hash, active, created_at, last_login
		FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// UserByID looks a user up by ID.
func (s *Store) UserByID(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, password_hash, active, created_at, last_login
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// UpdateLastLogin records the most recent login time.
func (s *Store) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// scanUser reads one user row, mapping a missing row to
// domain.ErrUserNotFound.
func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.Active, &u.CreatedAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if lastLogin.Valid {
		u.LastLogin = lastLogin.Time
	}
	return &u, nil
}
