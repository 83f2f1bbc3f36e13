package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/torfinnnome/fremgang/internal/models"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListByUser retrieves all activities owned by a user.
func (r *ActivityRepository) ListByUser(ctx context.Context, userID int64) ([]models.Activity, error) {
	query := `
		SELECT id, user_id, name, target_count
		FROM activities
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.TargetCount); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

// Create inserts a new activity and returns the assigned id.
func (r *ActivityRepository) Create(ctx context.Context, userID int64, name string, targetCount int64) (int64, error) {
	query := `
		INSERT INTO activities (user_id, name, target_count)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, userID, name, targetCount).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create activity: %w", err)
	}
	return id, nil
}

// UpdateOwned overwrites name and target of an activity, but only when it
// belongs to the given user. The ownership check and the mutation are one
// statement, so there is no window between them. Returns the number of
// rows affected: 0 means not found or not owned.
func (r *ActivityRepository) UpdateOwned(ctx context.Context, activityID, userID int64, name string, targetCount int64) (int64, error) {
	query := `
		UPDATE activities
		SET name = $1, target_count = $2
		WHERE id = $3 AND user_id = $4
	`
	result, err := r.db.Exec(ctx, query, name, targetCount, activityID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update activity: %w", err)
	}
	return result.RowsAffected(), nil
}
