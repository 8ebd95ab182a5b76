package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

const savedSearchColumns = `id, user_id, origin, destination, departure_date, return_date,
	passengers, max_price, airline_preference, notification_enabled, active, created_at`

// SaveSearch inserts a saved search.
func (s *Store) SaveSearch(ctx context.Context, search *domain.SavedSearch) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_searches (`+savedSearchColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		search.ID, search.UserID, search.Origin, search.Destination,
		search.DepartureDate, search.ReturnDate, search.Passengers,
		search.MaxPrice, search.AirlinePreference, search.NotificationEnabled,
		search.Active, search.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved search: %w", err)
	}
	return nil
}

// SearchesByUser lists a user's saved searches, newest first.
func (s *Store) SearchesByUser(ctx context.Context, userID string) ([]domain.SavedSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+savedSearchColumns+` FROM saved_searches
		WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query saved searches: %w", err)
	}
	defer rows.Close()
	return scanSearches(rows)
}

// ActiveWatches lists every active saved search with notifications enabled,
// across all users. Used by the alert checker.
func (s *Store) ActiveWatches(ctx context.Context) ([]domain.SavedSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+savedSearchColumns+` FROM saved_searches
		WHERE active = 1 AND notification_enabled = 1 ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query active watches: %w", err)
	}
	defer rows.Close()
	return scanSearches(rows)
}

// DeactivateSearch deactivates one of the user's saved searches. An unknown
// ID, or one belonging to another user, maps to domain.ErrSearchNotFound.
func (s *Store) DeactivateSearch(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE saved_searches SET active = 0 WHERE id = ? AND user_id = ?`,
		id, userID)
	if err != nil {
		return fmt.Errorf("deactivate saved search: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrSearchNotFound
	}
	return nil
}

// scanSearches reads all saved-search rows.
func scanSearches(rows *sql.Rows) ([]domain.SavedSearch, error) {
	var searches []domain.SavedSearch
	for rows.Next() {
		var search domain.SavedSearch
		err := rows.Scan(&search.ID, &search.UserID, &search.Origin,
			&search.Destination, &search.DepartureDate, &search.ReturnDate,
			&search.Passengers, &search.MaxPrice, &search.AirlinePreference,
			&search.NotificationEnabled, &search.Active, &search.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan saved search: %w", err)
		}
		searches = append(searches, search)
	}
	return searches, rows.Err()
}
