package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/torfinnnome/fremgang/internal/middleware"
	"github.com/torfinnnome/fremgang/internal/models"
	"github.com/torfinnnome/fremgang/internal/services"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// eventRequest uses a pointer for count so an explicit count of 0 is
// distinguishable from a missing field.
type eventRequest struct {
	ActivityID int64  `json:"activity_id"`
	Count      *int64 `json:"count"`
	Timestamp  string `json:"timestamp"`
}

// pagedEventsResponse is the body of GET /api/events.
type pagedEventsResponse struct {
	Events      []models.Event `json:"events"`
	TotalEvents int            `json:"totalEvents"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
}

// ListPaged handles GET /api/events?page&limit
func (h *EventHandler) ListPaged(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	page := parsePositive(r.URL.Query().Get("page"), defaultPage)
	limit := parsePositive(r.URL.Query().Get("limit"), defaultLimit)

	events, total, err := h.eventService.ListPaged(r.Context(), userID, page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	respondJSON(w, http.StatusOK, pagedEventsResponse{
		Events:      events,
		TotalEvents: total,
		Page:        page,
		Limit:       limit,
	})
}

// ListAll handles GET /api/events/all
func (h *EventHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	events, err := h.eventService.ListAll(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	respondJSON(w, http.StatusOK, events)
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ActivityID == 0 || req.Count == nil {
		respondError(w, "activity id and count are required", http.StatusBadRequest)
		return
	}

	id, err := h.eventService.Create(r.Context(), userID, req.ActivityID, *req.Count)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", userID).
		Int64("activity_id", req.ActivityID).
		Int64("event_id", id).
		Msg("Event created")

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "event created",
		"id":      id,
	})
}

// Update handles PUT /api/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, "invalid event id", http.StatusBadRequest)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ActivityID == 0 || req.Count == nil || req.Timestamp == "" {
		respondError(w, "activity id, count and timestamp are required", http.StatusBadRequest)
		return
	}

	changes, err := h.eventService.Update(r.Context(), userID, eventID, req.ActivityID, *req.Count, req.Timestamp)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "event updated",
		"changes": changes,
	})
}

// Delete handles DELETE /api/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, "invalid event id", http.StatusBadRequest)
		return
	}

	changes, err := h.eventService.Delete(r.Context(), userID, eventID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "event deleted",
		"changes": changes,
	})
}

// parsePositive parses a query value as a positive integer, falling back
// to def when the value is absent, non-numeric or less than 1.
func parsePositive(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return def
	}
	return n
}
