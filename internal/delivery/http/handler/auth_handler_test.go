package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	refreshFn func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

var _ usecase.AuthUsecase = (*stubAuthUsecase)(nil)

func (s *stubAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (s *stubAuthUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrInvalidCredentials
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return s.refreshFn(ctx, req)
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (s *stubAuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	return nil
}

func (s *stubAuthUsecase) IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	return true, nil
}

func refreshRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRefreshTokenDisabledAccount(t *testing.T) {
	stub := &stubAuthUsecase{
		refreshFn: func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrAccountDisabled
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, refreshRequest(`{"refresh_token":"some-token"}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
}

func TestRefreshTokenRevoked(t *testing.T) {
	stub := &stubAuthUsecase{
		refreshFn: func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTokenRevoked
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, refreshRequest(`{"refresh_token":"some-token"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
