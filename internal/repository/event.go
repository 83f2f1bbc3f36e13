package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/torfinnnome/fremgang/internal/models"
)

// EventRepository handles database operations for events. Every query is
// scoped through the event -> activity -> user join, so a row is only
// visible to the user owning its activity.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// ListPageByUser retrieves one page of a user's events ordered by
// timestamp descending, plus the total count across all pages.
func (r *EventRepository) ListPageByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Event, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM events e
		INNER JOIN activities a ON e.activity_id = a.id
		WHERE a.user_id = $1
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := `
		SELECT e.id, e.activity_id, e.count, e.timestamp
		FROM events e
		INNER JOIN activities a ON e.activity_id = a.id
		WHERE a.user_id = $1
		ORDER BY e.timestamp DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListAllByUser retrieves all of a user's events ordered by timestamp
// descending.
func (r *EventRepository) ListAllByUser(ctx context.Context, userID int64) ([]models.Event, error) {
	query := `
		SELECT e.id, e.activity_id, e.count, e.timestamp
		FROM events e
		INNER JOIN activities a ON e.activity_id = a.id
		WHERE a.user_id = $1
		ORDER BY e.timestamp DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CreateOwned inserts an event, but only when the target activity belongs
// to the given user. Returns the new id, or 0 when the activity is not
// owned (nothing inserted).
func (r *EventRepository) CreateOwned(ctx context.Context, activityID, userID, count int64, timestamp string) (int64, error) {
	query := `
		INSERT INTO events (activity_id, count, timestamp)
		SELECT $1, $2, $3
		WHERE EXISTS (
			SELECT 1 FROM activities WHERE id = $1 AND user_id = $4
		)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, activityID, count, timestamp, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// UpdateOwned overwrites all fields of an event, but only when the event's
// activity belongs to the given user. Returns the number of rows affected:
// 0 means not found or not owned.
func (r *EventRepository) UpdateOwned(ctx context.Context, eventID, userID, activityID, count int64, timestamp string) (int64, error) {
	query := `
		UPDATE events
		SET activity_id = $1, count = $2, timestamp = $3
		WHERE id = $4 AND activity_id IN (
			SELECT id FROM activities WHERE user_id = $5
		)
	`
	result, err := r.db.Exec(ctx, query, activityID, count, timestamp, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update event: %w", err)
	}
	return result.RowsAffected(), nil
}

// DeleteOwned removes an event, but only when its activity belongs to the
// given user. Returns the number of rows affected.
func (r *EventRepository) DeleteOwned(ctx context.Context, eventID, userID int64) (int64, error) {
	query := `
		DELETE FROM events
		WHERE id = $1 AND activity_id IN (
			SELECT id FROM activities WHERE user_id = $2
		)
	`
	result, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete event: %w", err)
	}
	return result.RowsAffected(), nil
}

// MigrateTimestamps rewrites event timestamps using convert, which returns
// the replacement string and whether the row needs rewriting at all. All
// updates run in one transaction; any failure rolls the whole batch back.
// Returns the number of rows rewritten.
func (r *EventRepository) MigrateTimestamps(ctx context.Context, convert func(string) (string, bool)) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id, timestamp FROM events`)
	if err != nil {
		return 0, fmt.Errorf("failed to scan events: %w", err)
	}

	type update struct {
		id int64
		ts string
	}
	var updates []update
	for rows.Next() {
		var id int64
		var ts string
		if err := rows.Scan(&id, &ts); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan event: %w", err)
		}
		if converted, ok := convert(ts); ok {
			updates = append(updates, update{id: id, ts: converted})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating events: %w", err)
	}

	for _, u := range updates {
		if _, err := tx.Exec(ctx, `UPDATE events SET timestamp = $1 WHERE id = $2`, u.ts, u.id); err != nil {
			return 0, fmt.Errorf("failed to update event %d: %w", u.id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit migration: %w", err)
	}
	return len(updates), nil
}

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.ActivityID, &e.Count, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}
