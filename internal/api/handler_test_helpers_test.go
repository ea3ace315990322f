package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the handlers under /api the same way the server does.
func newTestRouter(services *ServiceHandler, users *UserHandler, roles *RoleHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		if services != nil {
			r.Get("/services", services.ListServices)
			r.Post("/services", services.CreateService)
			r.Get("/services/{id}", services.GetService)
			r.Put("/services/{id}", services.UpdateService)
			r.Delete("/services/{id}", services.DeleteService)
		}
		if users != nil {
			r.Get("/users", users.ListUsers)
			r.Post("/users", users.CreateUser)
			r.Get("/users/{id}", users.GetUser)
			r.Put("/users/{id}", users.UpdateUser)
			r.Delete("/users/{id}", users.DeleteUser)
		}
		if roles != nil {
			r.Get("/roles", roles.ListRoles)
			r.Post("/roles", roles.CreateRole)
			r.Get("/roles/{id}", roles.GetRole)
			r.Put("/roles/{id}", roles.UpdateRole)
			r.Delete("/roles/{id}", roles.DeleteRole)
		}
	})
	return r
}

// doRequest sends a request carrying a fixed trace ID through handler.
func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	log, _ := logger.NewTestLogger(t)
	ctx := logger.WithLogger(shared.WithTraceID(context.Background(), "test-trace"), log)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(ctx))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
