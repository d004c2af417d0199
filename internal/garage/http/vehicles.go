package http

import (
	"net/http"

	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type VehicleHandler struct {
	VehicleService *service.VehicleService
}

func vehicleInput(req garagesdk.VehicleRequest) service.VehicleInput {
	return service.VehicleInput{
		Plate: req.Plate,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Color: req.Color,
	}
}

// HandleList handles GET /v1/vehicles
//
//	@Summary	List the owner's vehicles
//	@Tags		Vehicles
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		garagesdk.VehicleResponse
//	@Failure	401	{object}	garagesdk.APIError
//	@Router		/v1/vehicles [get].
func (h *VehicleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	vs, err := h.VehicleService.List(r.Context(), httpx.OwnerID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVehicleResponses(vs))
}

// HandleCreate handles POST /v1/vehicles
//
//	@Summary	Register a vehicle
//	@Tags		Vehicles
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		garagesdk.VehicleRequest	true	"Vehicle"
//	@Success	201		{object}	garagesdk.VehicleResponse
//	@Failure	400		{object}	garagesdk.APIError
//	@Failure	409		{object}	garagesdk.APIError	"Plate taken"
//	@Router		/v1/vehicles [post].
func (h *VehicleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.VehicleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	v, err := h.VehicleService.Register(r.Context(), httpx.OwnerID(r.Context()), vehicleInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toVehicleResponse(v))
}

// HandleGet handles GET /v1/vehicles/{plate}
//
//	@Summary	Get a vehicle by plate
//	@Tags		Vehicles
//	@Security	BearerAuth
//	@Produce	json
//	@Param		plate	path		string	true	"Plate"
//	@Success	200		{object}	garagesdk.VehicleResponse
//	@Failure	404		{object}	garagesdk.APIError
//	@Router		/v1/vehicles/{plate} [get].
func (h *VehicleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	v, err := h.VehicleService.GetByPlate(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("plate"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVehicleResponse(v))
}

// HandleUpdate handles PUT /v1/vehicles/{plate}
//
//	@Summary	Update a vehicle
//	@Tags		Vehicles
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		plate	path		string						true	"Plate"
//	@Param		request	body		garagesdk.VehicleRequest	true	"Vehicle"
//	@Success	200		{object}	garagesdk.VehicleResponse
//	@Failure	400		{object}	garagesdk.APIError
//	@Failure	404		{object}	garagesdk.APIError
//	@Failure	409		{object}	garagesdk.APIError
//	@Router		/v1/vehicles/{plate} [put].
func (h *VehicleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req garagesdk.VehicleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	v, err := h.VehicleService.UpdateByPlate(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("plate"), vehicleInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVehicleResponse(v))
}

// HandleDelete handles DELETE /v1/vehicles/{plate}
//
//	@Summary	Delete a vehicle with its records
//	@Tags		Vehicles
//	@Security	BearerAuth
//	@Param		plate	path	string	true	"Plate"
//	@Success	204
//	@Failure	404	{object}	garagesdk.APIError
//	@Router		/v1/vehicles/{plate} [delete].
func (h *VehicleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.VehicleService.DeleteByPlate(r.Context(), httpx.OwnerID(r.Context()), r.PathValue("plate")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
