package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/torfinnnome/fremgang/internal/middleware"
	"github.com/torfinnnome/fremgang/internal/services"
)

const testSecret = "test-secret"

// newTestRouter wires the handlers over an in-memory store, mirroring the
// server's route table.
func newTestRouter(store *fakeStore) http.Handler {
	authService := services.NewAuthService(store, testSecret)
	activityService := services.NewActivityService(activityStoreAdapter{store})
	eventService := services.NewEventService(store)

	authHandler := NewAuthHandler(authService)
	activityHandler := NewActivityHandler(activityService)
	eventHandler := NewEventHandler(eventService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService))
			r.Get("/activities", activityHandler.List)
			r.Post("/activities", activityHandler.Create)
			r.Put("/activities/{id}", activityHandler.Update)
			r.Get("/events", eventHandler.ListPaged)
			r.Get("/events/all", eventHandler.ListAll)
			r.Post("/events", eventHandler.Create)
			r.Put("/events/{id}", eventHandler.Update)
			r.Delete("/events/{id}", eventHandler.Delete)
		})
	})
	return r
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// registerAndLogin creates a user through the API and returns a bearer
// token for it.
func registerAndLogin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}
