package handlers

import (
	"context"
	"sort"

	"github.com/torfinnnome/fremgang/internal/models"
	"github.com/torfinnnome/fremgang/internal/repository"
)

// fakeStore is an in-memory stand-in for the repositories, enforcing the
// same ownership semantics the SQL does.
type fakeStore struct {
	users      map[string]*models.User
	activities map[int64]*models.Activity
	events     map[int64]*models.Event
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]*models.User),
		activities: make(map[int64]*models.Activity),
		events:     make(map[int64]*models.Event),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) Create(_ context.Context, email, passwordHash string) (int64, error) {
	if _, ok := s.users[email]; ok {
		return 0, repository.ErrDuplicateEmail
	}
	user := &models.User{ID: s.id(), Email: email, PasswordHash: passwordHash}
	s.users[email] = user
	return user.ID, nil
}

func (s *fakeStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID int64) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) CreateActivity(_ context.Context, userID int64, name string, targetCount int64) (int64, error) {
	a := &models.Activity{ID: s.id(), UserID: userID, Name: name, TargetCount: targetCount}
	s.activities[a.ID] = a
	return a.ID, nil
}

func (s *fakeStore) UpdateOwnedActivity(_ context.Context, activityID, userID int64, name string, targetCount int64) (int64, error) {
	a, ok := s.activities[activityID]
	if !ok || a.UserID != userID {
		return 0, nil
	}
	a.Name = name
	a.TargetCount = targetCount
	return 1, nil
}

func (s *fakeStore) owns(userID, activityID int64) bool {
	a, ok := s.activities[activityID]
	return ok && a.UserID == userID
}

func (s *fakeStore) eventsOf(userID int64) []models.Event {
	var out []models.Event
	for _, e := range s.events {
		if s.owns(userID, e.ActivityID) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

func (s *fakeStore) ListPageByUser(_ context.Context, userID int64, limit, offset int) ([]models.Event, int, error) {
	all := s.eventsOf(userID)
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *fakeStore) ListAllByUser(_ context.Context, userID int64) ([]models.Event, error) {
	return s.eventsOf(userID), nil
}

func (s *fakeStore) CreateOwned(_ context.Context, activityID, userID, count int64, timestamp string) (int64, error) {
	if !s.owns(userID, activityID) {
		return 0, nil
	}
	e := &models.Event{ID: s.id(), ActivityID: activityID, Count: count, Timestamp: timestamp}
	s.events[e.ID] = e
	return e.ID, nil
}

func (s *fakeStore) UpdateOwned(_ context.Context, eventID, userID, activityID, count int64, timestamp string) (int64, error) {
	e, ok := s.events[eventID]
	if !ok || !s.owns(userID, e.ActivityID) {
		return 0, nil
	}
	e.ActivityID = activityID
	e.Count = count
	e.Timestamp = timestamp
	return 1, nil
}

func (s *fakeStore) DeleteOwned(_ context.Context, eventID, userID int64) (int64, error) {
	e, ok := s.events[eventID]
	if !ok || !s.owns(userID, e.ActivityID) {
		return 0, nil
	}
	delete(s.events, eventID)
	return 1, nil
}

// activityStoreAdapter renames the activity methods onto the interface the
// service expects, since fakeStore also implements the user store's Create.
type activityStoreAdapter struct{ *fakeStore }

func (a activityStoreAdapter) Create(ctx context.Context, userID int64, name string, targetCount int64) (int64, error) {
	return a.CreateActivity(ctx, userID, name, targetCount)
}

func (a activityStoreAdapter) UpdateOwned(ctx context.Context, activityID, userID int64, name string, targetCount int64) (int64, error) {
	return a.UpdateOwnedActivity(ctx, activityID, userID, name, targetCount)
}
