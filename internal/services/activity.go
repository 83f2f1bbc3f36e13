package services

import (
	"context"
	"fmt"

	"github.com/torfinnnome/fremgang/internal/models"
)

// ActivityStore is the persistence surface the activity service needs.
type ActivityStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Activity, error)
	Create(ctx context.Context, userID int64, name string, targetCount int64) (int64, error)
	UpdateOwned(ctx context.Context, activityID, userID int64, name string, targetCount int64) (int64, error)
}

// ActivityService handles activity business logic.
type ActivityService struct {
	activities ActivityStore
}

// NewActivityService creates a new activity service
func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

// List returns all activities owned by the user.
func (s *ActivityService) List(ctx context.Context, userID int64) ([]models.Activity, error) {
	activities, err := s.activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Create inserts an activity for the user and returns the new id.
func (s *ActivityService) Create(ctx context.Context, userID int64, name string, targetCount int64) (int64, error) {
	id, err := s.activities.Create(ctx, userID, name, targetCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create activity: %w", err)
	}
	return id, nil
}

// Update overwrites name and target of an activity the user owns. Returns
// ErrForbidden when the activity does not exist or belongs to someone
// else, otherwise the affected-row count.
func (s *ActivityService) Update(ctx context.Context, userID, activityID int64, name string, targetCount int64) (int64, error) {
	changes, err := s.activities.UpdateOwned(ctx, activityID, userID, name, targetCount)
	if err != nil {
		return 0, fmt.Errorf("failed to update activity: %w", err)
	}
	if changes == 0 {
		return 0, ErrForbidden
	}
	return changes, nil
}
