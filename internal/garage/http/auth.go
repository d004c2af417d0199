package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// AuthHandler serves owner registration and login.
type AuthHandler struct {
	OwnerService *service.OwnerService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register an owner
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		garagesdk.RegisterRequest	true	"Owner details"
//	@Success		201		{object}	garagesdk.OwnerResponse
//	@Failure		400		{object}	garagesdk.APIError	"Invalid request"
//	@Failure		409		{object}	garagesdk.APIError	"Email or national ID taken"
//	@Failure		429		{object}	garagesdk.APIError	"Rate limited"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	owner, err := h.OwnerService.Register(r.Context(), service.RegisterOwner{
		Name:       req.Name,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOwnerResponse(owner))
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Exchanges email and password, plus a TOTP code when enabled, for an access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		garagesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	garagesdk.LoginResponse
//	@Failure		400		{object}	garagesdk.APIError	"Invalid request"
//	@Failure		401		{object}	garagesdk.APIError	"Invalid credentials, TOTP required or invalid"
//	@Failure		429		{object}	garagesdk.APIError	"Rate limited"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		garagesdk.ErrInvalidRequest.WithDescription("email and password are required").WriteError(w)
		return
	}

	owner, sess, err := h.OwnerService.Login(r.Context(), req.Email, req.Password, req.TOTPCode)
	if err != nil {
		slogx.FromContext(r.Context()).Info("login rejected", "reason", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, garagesdk.LoginResponse{
		AccessToken: sess.AccessToken,
		TokenType:   sess.TokenType,
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Seconds()),
		ExpiresAt:   sess.ExpiresAt,
		Owner:       toOwnerResponse(owner),
	})
}
