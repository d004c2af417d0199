package http

import (
	"net/http"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type OwnerHandler struct {
	OwnerService *service.OwnerService
}

// HandleGet handles GET /v1/owners/me
//
//	@Summary	Current owner profile
//	@Tags		Owners
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	garagesdk.OwnerResponse
//	@Failure	401	{object}	garagesdk.APIError
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/owners/me [get].
func (h *OwnerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.OwnerService.Get(r.Context(), httpx.OwnerID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
}

// HandleUpdate handles PUT /v1/owners/me
//
//	@Summary	Update the current owner
//	@Tags		Owners
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		garagesdk.UpdateOwnerRequest	true	"Fields to change"
//	@Success	200		{object}	garagesdk.OwnerResponse
//	@Failure	400		{object}	garagesdk.APIError
//	@Failure	409		{object}	garagesdk.APIError
//	@Router		/v1/owners/me [put].
func (h *OwnerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.UpdateOwnerRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	o, err := h.OwnerService.Update(r.Context(), httpx.OwnerID(r.Context()), service.UpdateOwner{
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
	httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
}

// HandleDelete handles DELETE /v1/owners/me
//
//	@Summary	Delete the current owner with all vehicles and files
//	@Tags		Owners
//	@Security	BearerAuth
//	@Success	204
//	@Failure	401	{object}	garagesdk.APIError
//	@Router		/v1/owners/me [delete].
func (h *OwnerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.OwnerService.Delete(r.Context(), httpx.OwnerID(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
