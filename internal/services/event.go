package services

import (
	"context"
	"fmt"
	"time"

	"github.com/torfinnnome/fremgang/internal/models"
)

// EventStore is the persistence surface the event service needs.
type EventStore interface {
	ListPageByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Event, int, error)
	ListAllByUser(ctx context.Context, userID int64) ([]models.Event, error)
	CreateOwned(ctx context.Context, activityID, userID, count int64, timestamp string) (int64, error)
	UpdateOwned(ctx context.Context, eventID, userID, activityID, count int64, timestamp string) (int64, error)
	DeleteOwned(ctx context.Context, eventID, userID int64) (int64, error)
}

// EventService handles event business logic.
type EventService struct {
	events EventStore
}

// NewEventService creates a new event service
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// ListPaged returns one page of the user's events, newest first, plus the
// total count across all pages.
func (s *EventService) ListPaged(ctx context.Context, userID int64, page, limit int) ([]models.Event, int, error) {
	offset := (page - 1) * limit
	events, total, err := s.events.ListPageByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// ListAll returns all of the user's events, newest first.
func (s *EventService) ListAll(ctx context.Context, userID int64) ([]models.Event, error) {
	events, err := s.events.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Create records an event against an activity the user owns, stamped with
// the current time in RFC 3339 UTC. Returns ErrForbidden when the
// activity is not the user's.
func (s *EventService) Create(ctx context.Context, userID, activityID, count int64) (int64, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	id, err := s.events.CreateOwned(ctx, activityID, userID, count, timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	if id == 0 {
		return 0, ErrForbidden
	}
	return id, nil
}

// Update overwrites all fields of an event whose activity the user owns.
// Returns ErrForbidden when the event does not resolve to the user,
// otherwise the affected-row count.
func (s *EventService) Update(ctx context.Context, userID, eventID, activityID, count int64, timestamp string) (int64, error) {
	changes, err := s.events.UpdateOwned(ctx, eventID, userID, activityID, count, timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to update event: %w", err)
	}
	if changes == 0 {
		return 0, ErrForbidden
	}
	return changes, nil
}

// Delete removes an event whose activity the user owns. Returns
// ErrForbidden when the event does not resolve to the user, otherwise the
// affected-row count.
func (s *EventService) Delete(ctx context.Context, userID, eventID int64) (int64, error) {
	changes, err := s.events.DeleteOwned(ctx, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete event: %w", err)
	}
	if changes == 0 {
		return 0, ErrForbidden
	}
	return changes, nil
}
