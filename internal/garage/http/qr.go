package http

import (
	"net/http"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type QRHandler struct {
	QRService *service.QRService
}

// HandleIssue handles POST /v1/qr/maintenance/{vehicleID}
//
//	@Summary		Issue a workshop access code
//	@Description	Issues a short-lived code for one of the owner's vehicles and returns the submission link as a QR image.
//	@Description	Anyone holding the code can add maintenance records to that vehicle until it expires.
//	@Tags			Workshop access
//	@Security		BearerAuth
//	@Produce		json
//	@Param			vehicleID	path		string	true	"Vehicle ID"
//	@Success		201			{object}	garagesdk.QRResponse
//	@Failure		401			{object}	garagesdk.APIError
//	@Failure		404			{object}	garagesdk.APIError	"Vehicle missing or owned by someone else"
//	@Failure		500			{object}	garagesdk.APIError
//	@Router			/v1/qr/maintenance/{vehicleID} [post].
func (h *QRHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	g, err := h.QRService.IssueMaintenanceQR(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("vehicleID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, garagesdk.QRResponse{
		Code:          g.Code,
		SubmissionURL: g.SubmissionURL,
		QRImage:       g.ImageDataURL,
		ExpiresAt:     g.ExpiresAt,
		ExpiresIn:     int(g.TTL.Seconds()),
	})
}
