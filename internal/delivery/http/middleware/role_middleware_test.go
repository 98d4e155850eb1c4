package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoleAllows(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin, entity.RoleDoctor)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("doctor"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleIsCaseInsensitive(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("ADMIN"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("patient"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutContext(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireClinicalStaff(t *testing.T) {
	handler := RequireClinicalStaff(okHandler())

	for _, role := range []string{"admin", "doctor", "nurse"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithRole(role))
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("receptionist"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireBillingStaff(t *testing.T) {
	handler := RequireBillingStaff(okHandler())

	for _, role := range []string{"admin", "receptionist"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithRole(role))
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("patient"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
