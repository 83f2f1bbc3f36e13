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

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type activityRequest struct {
	Name        string `json:"name"`
	TargetCount int64  `json:"target_count"`
}

// List handles GET /api/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	activities, err := h.activityService.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	respondJSON(w, http.StatusOK, activities)
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		respondError(w, "activity name is required", http.StatusBadRequest)
		return
	}

	id, err := h.activityService.Create(r.Context(), userID, req.Name, req.TargetCount)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", userID).
		Int64("activity_id", id).
		Str("name", req.Name).
		Msg("Activity created")

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "activity created",
		"id":      id,
	})
}

// Update handles PUT /api/activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	activityID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		respondError(w, "activity name is required", http.StatusBadRequest)
		return
	}

	changes, err := h.activityService.Update(r.Context(), userID, activityID, req.Name, req.TargetCount)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "activity updated",
		"changes": changes,
	})
}
