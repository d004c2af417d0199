package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type ObligationHandler struct {
	ObligationService *service.ObligationService
	MaxUploadBytes    int64
}

func (h *ObligationHandler) readObligationForm(w http.ResponseWriter, r *http.Request) (service.ObligationInput, *uploadedFile, error) {
	var in service.ObligationInput
	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		return in, nil, err
	}

	in.Name = r.FormValue(garagesdk.FieldName)
	in.Type = r.FormValue(garagesdk.FieldType)

	var err error
	if in.IssuedAt, err = parseOptionalDate(r.FormValue(garagesdk.FieldIssuedAt)); err != nil {
		return in, nil, err
	}
	if in.RenewalAt, err = parseOptionalDate(r.FormValue(garagesdk.FieldRenewalAt)); err != nil {
		return in, nil, err
	}

	up, file, err := formFile(r, garagesdk.FieldDocument)
	if err != nil {
		return in, nil, err
	}
	return in, &uploadedFile{upload: up, file: file}, nil
}

// HandleCreate handles POST /v1/obligations
//
//	@Summary	Record a legal obligation with its document
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		vehicle_id	formData	string	true	"Vehicle ID"
//	@Param		name		formData	string	true	"Name"
//	@Param		type		formData	string	true	"Type, e.g. insurance"
//	@Param		issued_at	formData	string	false	"Issue date (YYYY-MM-DD)"
//	@Param		renewal_at	formData	string	false	"Renewal date (YYYY-MM-DD)"
//	@Param		document	formData	file	true	"Document (PDF or image)"
//	@Success	201			{object}	garagesdk.ObligationResponse
//	@Failure	400			{object}	garagesdk.APIError
//	@Failure	404			{object}	garagesdk.APIError
//	@Router		/v1/obligations [post].
func (h *ObligationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, up, err := h.readObligationForm(w, r)
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer up.Close()

	vehicleID := strings.TrimSpace(r.FormValue(garagesdk.FieldVehicleID))
	if vehicleID == "" {
		garagesdk.ErrInvalidRequest.WithDescription("vehicle_id is required").WriteError(w)
		return
	}

	o, err := h.ObligationService.Create(r.Context(), httpx.OwnerID(r.Context()), vehicleID, in, up.upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toObligationResponse(o, time.Now()))
}

// HandleListForOwner handles GET /v1/obligations
//
//	@Summary	All obligations across the owner's vehicles
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	garagesdk.ObligationResponse
//	@Router		/v1/obligations [get].
func (h *ObligationHandler) HandleListForOwner(w http.ResponseWriter, r *http.Request) {
	obs, err := h.ObligationService.ListForOwner(r.Context(), httpx.OwnerID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toObligationResponses(obs, time.Now()))
}

// HandleListForVehicle handles GET /v1/vehicles/{vehicleID}/obligations
//
//	@Summary	Obligations of a vehicle
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		vehicleID	path		string	true	"Vehicle ID"
//	@Success	200			{array}		garagesdk.ObligationResponse
//	@Failure	404			{object}	garagesdk.APIError
//	@Router		/v1/vehicles/{vehicleID}/obligations [get].
func (h *ObligationHandler) HandleListForVehicle(w http.ResponseWriter, r *http.Request) {
	obs, err := h.ObligationService.ListForVehicle(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("vehicleID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toObligationResponses(obs, time.Now()))
}

// HandleGet handles GET /v1/obligations/{id}
//
//	@Summary	Get an obligation
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Obligation ID"
//	@Success	200	{object}	garagesdk.ObligationResponse
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/obligations/{id} [get].
func (h *ObligationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.ObligationService.Get(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toObligationResponse(o, time.Now()))
}

// HandleUpdate handles PUT /v1/obligations/{id}
//
//	@Summary	Replace an obligation
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id			path		string	true	"Obligation ID"
//	@Param		document	formData	file	false	"Replacement document"
//	@Success	200			{object}	garagesdk.ObligationResponse
//	@Failure	400			{object}	garagesdk.APIError
//	@Failure	404			{object}	garagesdk.APIError
//	@Router		/v1/obligations/{id} [put].
func (h *ObligationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	in, up, err := h.readObligationForm(w, r)
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer up.Close()

	o, err := h.ObligationService.Update(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"), in, up.upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toObligationResponse(o, time.Now()))
}

// HandleDelete handles DELETE /v1/obligations/{id}
//
//	@Summary	Delete an obligation
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Obligation ID"
//	@Success	204
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/obligations/{id} [delete].
func (h *ObligationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ObligationService.Delete(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDocument handles GET /v1/obligations/{id}/document
//
//	@Summary	Download the document of an obligation
//	@Tags		Obligations
//	@Security	BearerAuth
//	@Produce	application/pdf,image/png,image/jpeg
//	@Param		id	path	string	true	"Obligation ID"
//	@Success	200
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/obligations/{id}/document [get].
func (h *ObligationHandler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	f, ctype, err := h.ObligationService.OpenDocument(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	serveFile(w, r, f, ctype)
}
