package api

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/agency-api/internal/mocks"
	"github.com/phrazzld/agency-api/internal/service"
	"github.com/phrazzld/agency-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		mockSvc := &mocks.MockRoleService{Roles: []service.RoleDTO{{ID: 1, Name: "Admin"}}}
		router := newTestRouter(nil, nil, NewRoleHandler(mockSvc, slog.Default()))

		w := doRequest(t, router, http.MethodGet, "/api/roles", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Admin"}]`, w.Body.String())
	})

	t.Run("get missing role", func(t *testing.T) {
		mockSvc := &mocks.MockRoleService{DefaultError: store.ErrRoleNotFound}
		router := newTestRouter(nil, nil, NewRoleHandler(mockSvc, slog.Default()))

		w := doRequest(t, router, http.MethodGet, "/api/roles/3", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Role not found", decodeError(t, w).Error)
	})

	t.Run("create", func(t *testing.T) {
		mockSvc := &mocks.MockRoleService{
			AddRoleFn: func(ctx context.Context, dto service.RoleDTO) (*service.RoleDTO, error) {
				return &service.RoleDTO{ID: 4, Name: dto.Name}, nil
			},
		}
		router := newTestRouter(nil, nil, NewRoleHandler(mockSvc, slog.Default()))

		w := doRequest(t, router, http.MethodPost, "/api/roles", `{"name":"Editor"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":4,"name":"Editor"}`, w.Body.String())
		assert.Equal(t, "/api/roles/4", w.Header().Get("Location"))
	})

	t.Run("create duplicate", func(t *testing.T) {
		mockSvc := &mocks.MockRoleService{DefaultError: store.ErrRoleExists}
		router := newTestRouter(nil, nil, NewRoleHandler(mockSvc, slog.Default()))

		w := doRequest(t, router, http.MethodPost, "/api/roles", `{"name":"Admin"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Role name already exists", decodeError(t, w).Error)
	})

	t.Run("update", func(t *testing.T) {
		var got service.RoleDTO
		mockSvc := &mocks.MockRoleService{
			UpdateRoleFn: func(ctx context.Context, id int64, dto service.RoleDTO) error {
				got = dto
				return nil
			},
		}
		router := newTestRouter(nil, nil, NewRoleHandler(mockSvc, slog.Default()))

		w := doRequest(t, router, http.MethodPut, "/api/roles/1", `{"name":"Owner"}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "Owner", got.Name)
	})

	t.Run("delete with bad id", func(t *testing.T) {
		router := newTestRouter(nil, nil, NewRoleHandler(&mocks.MockRoleService{}, slog.Default()))

		w := doRequest(t, router, http.MethodDelete, "/api/roles/-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		router := newTestRouter(nil, nil, NewRoleHandler(&mocks.MockRoleService{}, slog.Default()))

		w := doRequest(t, router, http.MethodDelete, "/api/roles/1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
