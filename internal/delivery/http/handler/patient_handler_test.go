package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPatientUsecase struct {
	listFn    func(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error)
	listCalls int
}

var _ usecase.PatientUsecase = (*stubPatientUsecase)(nil)

func (s *stubPatientUsecase) List(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error) {
	s.listCalls++
	return s.listFn(ctx, actorRole, activeOnly, params)
}

func (s *stubPatientUsecase) GetByUserID(ctx context.Context, actorID, userID uuid.UUID, actorRole string) (*dto.PatientResponse, error) {
	return nil, usecase.ErrPatientNotFound
}

func (s *stubPatientUsecase) Update(ctx context.Context, actorID, userID uuid.UUID, actorRole string, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	return nil, usecase.ErrPatientNotFound
}

func patientListRequest(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return req.WithContext(ctx)
}

func TestPatientListBlockedForPatientRole(t *testing.T) {
	stub := &stubPatientUsecase{}
	h := NewPatientHandler(stub, validator.NewValidator())

	// Routed as in the router: the roster sits behind the front-desk gate.
	gated := middleware.RequireFrontDesk(http.HandlerFunc(h.List))

	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, patientListRequest("patient"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, stub.listCalls)
}

func TestPatientListForbiddenMapsTo403(t *testing.T) {
	stub := &stubPatientUsecase{
		listFn: func(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error) {
			return nil, 0, usecase.ErrForbidden
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, patientListRequest("patient"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1, stub.listCalls)
}

func TestPatientListReturnsRosterForStaff(t *testing.T) {
	var seenRole string
	stub := &stubPatientUsecase{
		listFn: func(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error) {
			seenRole = actorRole
			return []dto.PatientResponse{{PatientCode: "P-20260101-AAAAAA", FullName: "Jane Roe"}}, 1, nil
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())
	gated := middleware.RequireFrontDesk(http.HandlerFunc(h.List))

	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, patientListRequest("receptionist"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "receptionist", seenRole)
	assert.Contains(t, rec.Body.String(), "P-20260101-AAAAAA")
}
