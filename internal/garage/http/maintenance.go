package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type MaintenanceHandler struct {
	MaintenanceService *service.MaintenanceService
	MaxUploadBytes     int64
}

// readMaintenanceForm parses the body and returns the input with the
// optional invoice. The caller closes the returned file.
func (h *MaintenanceHandler) readMaintenanceForm(w http.ResponseWriter, r *http.Request) (service.MaintenanceInput, *uploadedFile, error) {
	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		return service.MaintenanceInput{}, nil, err
	}
	f, err := readMaintenanceFields(r)
	if err != nil {
		return service.MaintenanceInput{}, nil, err
	}
	up, file, err := formFile(r, garagesdk.FieldInvoice)
	if err != nil {
		return service.MaintenanceInput{}, nil, err
	}
	return service.MaintenanceInput{
		Type:        f.Type,
		PerformedAt: f.PerformedAt,
		Mileage:     f.Mileage,
		Description: f.Description,
		CostCents:   f.CostCents,
		NextDueAt:   f.NextDueAt,
	}, &uploadedFile{upload: up, file: file}, nil
}

// HandleCreate handles POST /v1/maintenance
//
//	@Summary	Record maintenance on an owned vehicle
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		vehicle_id	formData	string	true	"Vehicle ID"
//	@Param		type		formData	string	true	"Maintenance type"
//	@Param		date		formData	string	true	"Service date (YYYY-MM-DD)"
//	@Param		mileage		formData	int		false	"Odometer reading"
//	@Param		description	formData	string	false	"Notes"
//	@Param		cost_cents	formData	int		false	"Cost in cents"
//	@Param		next_due	formData	string	false	"Next service date (YYYY-MM-DD)"
//	@Param		invoice		formData	file	false	"Invoice (PDF or image)"
//	@Success	201			{object}	garagesdk.MaintenanceResponse
//	@Failure	400			{object}	garagesdk.APIError
//	@Failure	404			{object}	garagesdk.APIError
//	@Failure	413			{object}	garagesdk.APIError
//	@Failure	415			{object}	garagesdk.APIError
//	@Router		/v1/maintenance [post].
func (h *MaintenanceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, up, err := h.readMaintenanceForm(w, r)
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

	rec, err := h.MaintenanceService.Create(r.Context(), httpx.OwnerID(r.Context()), vehicleID, in, up.upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMaintenanceResponse(rec))
}

// HandleListForVehicle handles GET /v1/vehicles/{vehicleID}/maintenance
//
//	@Summary	Maintenance log of a vehicle, newest first
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		vehicleID	path		string	true	"Vehicle ID"
//	@Success	200			{array}		garagesdk.MaintenanceResponse
//	@Failure	404			{object}	garagesdk.APIError
//	@Router		/v1/vehicles/{vehicleID}/maintenance [get].
func (h *MaintenanceHandler) HandleListForVehicle(w http.ResponseWriter, r *http.Request) {
	recs, err := h.MaintenanceService.ListForVehicle(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("vehicleID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMaintenanceResponses(recs))
}

// HandleGet handles GET /v1/maintenance/{id}
//
//	@Summary	Get a maintenance record
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{object}	garagesdk.MaintenanceResponse
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/maintenance/{id} [get].
func (h *MaintenanceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.MaintenanceService.Get(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMaintenanceResponse(rec))
}

// HandleUpdate handles PUT /v1/maintenance/{id}
//
//	@Summary	Replace a maintenance record
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		string	true	"Record ID"
//	@Param		invoice	formData	file	false	"Replacement invoice"
//	@Success	200		{object}	garagesdk.MaintenanceResponse
//	@Failure	400		{object}	garagesdk.APIError
//	@Failure	404		{object}	garagesdk.APIError
//	@Router		/v1/maintenance/{id} [put].
func (h *MaintenanceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	in, up, err := h.readMaintenanceForm(w, r)
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer up.Close()

	rec, err := h.MaintenanceService.Update(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"), in, up.upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMaintenanceResponse(rec))
}

// HandleDelete handles DELETE /v1/maintenance/{id}
//
//	@Summary	Delete a maintenance record
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Record ID"
//	@Success	204
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/maintenance/{id} [delete].
func (h *MaintenanceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.MaintenanceService.Delete(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleInvoice handles GET /v1/maintenance/{id}/invoice
//
//	@Summary	Download the invoice of a record
//	@Tags		Maintenance
//	@Security	BearerAuth
//	@Produce	application/pdf,image/png,image/jpeg
//	@Param		id	path	string	true	"Record ID"
//	@Success	200
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/maintenance/{id}/invoice [get].
func (h *MaintenanceHandler) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	f, ctype, err := h.MaintenanceService.OpenInvoice(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	serveFile(w, r, f, ctype)
}
