package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/service"
)

// AuthServiceInterface defines the auth service operations used by handlers.
type AuthServiceInterface interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	BeginFederatedLogin() (*service.BeginFederatedResult, error)
	CompleteFederatedLogin(ctx context.Context, code, state string) (string, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc AuthServiceInterface
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the body returned by every endpoint that issues a token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(token string) tokenResponse {
	return tokenResponse{AccessToken: token, TokenType: "bearer"}
}

// Register handles POST /api/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newTokenResponse(token))
}

// Token handles POST /api/auth/token (password login).
func (h *AuthHandlers) Token(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newTokenResponse(token))
}

// GitHubLogin handles GET /api/auth/github/login.
func (h *AuthHandlers) GitHubLogin(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.BeginFederatedLogin()
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// GitHubCallback handles GET /api/auth/github/callback?code=..&state=..
func (h *AuthHandlers) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteAppError(w, apperrors.Validation("authorization code is required"))
		return
	}

	token, err := h.Svc.CompleteFederatedLogin(r.Context(), code, state)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, newTokenResponse(token))
}
