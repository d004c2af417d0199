package http

import (
	"net/http"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

// MFAHandler handles TOTP enrollment for owners.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /v1/mfa/totp/enroll
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a TOTP secret and returns it with a QR code. TOTP is enforced only after verification.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	garagesdk.TOTPEnrollResponse
//	@Failure		401	{object}	garagesdk.APIError
//	@Failure		409	{object}	garagesdk.APIError	"TOTP already enabled"
//	@Router			/v1/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	enr, err := h.MFAService.EnrollTOTP(r.Context(), httpx.OwnerID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, garagesdk.TOTPEnrollResponse{
		Secret:  enr.Secret,
		URL:     enr.URL,
		QRImage: enr.QRImageURL,
	})
}

// HandleVerify handles POST /v1/mfa/totp/verify
//
//	@Summary	Confirm a TOTP code and enable TOTP
//	@Tags		MFA
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	garagesdk.TOTPCodeRequest	true	"Current code"
//	@Success	204
//	@Failure	400	{object}	garagesdk.APIError
//	@Failure	401	{object}	garagesdk.APIError
//	@Router		/v1/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.TOTPCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := h.MFAService.VerifyTOTP(r.Context(), httpx.OwnerID(r.Context()), req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDisable handles DELETE /v1/mfa/totp
//
//	@Summary	Disable TOTP
//	@Tags		MFA
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	garagesdk.TOTPCodeRequest	true	"Current code"
//	@Success	204
//	@Failure	400	{object}	garagesdk.APIError
//	@Failure	401	{object}	garagesdk.APIError
//	@Router		/v1/mfa/totp [delete].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.TOTPCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if err := h.MFAService.DisableTOTP(r.Context(), httpx.OwnerID(r.Context()), req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
