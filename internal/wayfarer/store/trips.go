package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip is one group trip record.
type Trip struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	GroupSize   int       `json:"group_size"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTrip inserts a new trip, assigning it a fresh UUID, and returns the
// stored record.
func (s *Store) CreateTrip(ctx context.Context, t Trip) (*Trip, error) {
	t.ID = uuid.New().String()
	if t.GroupSize <= 0 {
		t.GroupSize = 1
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trips (id, name, destination, start_date, end_date, group_size, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Destination, t.StartDate, t.EndDate, t.GroupSize, t.Notes, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("store: create trip: %w", err)
	}
	return &t, nil
}

// GetTrip returns the trip with the given id, or ErrNotFound.
func (s *Store) GetTrip(ctx context.Context, id string) (*Trip, error) {
	var t Trip
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, destination, start_date, end_date, group_size, notes, created_at, updated_at
		FROM trips WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.GroupSize, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get trip: %w", err)
	}
	return &t, nil
}

// ListTrips returns all trips, newest first.
func (s *Store) ListTrips(ctx context.Context) ([]Trip, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, destination, start_date, end_date, group_size, notes, created_at, updated_at
		FROM trips ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list trips: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.GroupSize, &t.Notes, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// UpdateTrip overwrites the mutable fields of an existing trip.
// Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateTrip(ctx context.Context, t Trip) (*Trip, error) {
	if t.GroupSize <= 0 {
		t.GroupSize = 1
	}
	t.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		UPDATE trips SET name = ?, destination = ?, start_date = ?, end_date = ?, group_size = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		t.Name, t.Destination, t.StartDate, t.EndDate, t.GroupSize, t.Notes, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: update trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("store: update trip: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTrip(ctx, t.ID)
}

// DeleteTrip removes a trip and, via cascade, its chat log.
// Returns ErrNotFound when the id does not exist.
func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete trip: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// TripCount returns the number of trips; used by the status endpoint.
func (s *Store) TripCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: trip count: %w", err)
	}
	return n, nil
}
