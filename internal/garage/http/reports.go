package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

type ReportHandler struct {
	ReportService *service.ReportService
}

func parseReportFilter(r *http.Request) (domain.ReportFilter, error) {
	q := r.URL.Query()
	f := domain.ReportFilter{
		MaintenanceType: strings.TrimSpace(q.Get(garagesdk.QueryMaintenanceType)),
		Plate:           service.NormalizePlate(q.Get(garagesdk.QueryPlate)),
		Make:            strings.TrimSpace(q.Get(garagesdk.QueryMake)),
	}

	var err error
	if f.From, err = parseOptionalDate(q.Get(garagesdk.QueryFrom)); err != nil {
		return f, err
	}
	if f.To, err = parseOptionalDate(q.Get(garagesdk.QueryTo)); err != nil {
		return f, err
	}
	if f.To != nil {
		// Dates name whole days.
		end := f.To.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}

	switch s := strings.ToLower(strings.TrimSpace(q.Get(garagesdk.QueryObligation))); s {
	case "":
	case "current":
		current := true
		f.ObligationCurrent = &current
	case "expired":
		current := false
		f.ObligationCurrent = &current
	default:
		return f, fmt.Errorf("%s must be current or expired", garagesdk.QueryObligation)
	}
	return f, nil
}

// HandleGenerate handles GET /v1/reports
//
//	@Summary		Fleet report
//	@Description	Per vehicle maintenance and obligations. Setting a maintenance or obligation filter drops vehicles with nothing matching it.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			maintenance_type	query		string	false	"Substring of the maintenance type"
//	@Param			from				query		string	false	"Earliest service date (YYYY-MM-DD)"
//	@Param			to					query		string	false	"Latest service date (YYYY-MM-DD)"
//	@Param			obligation_status	query		string	false	"current or expired"
//	@Param			plate				query		string	false	"Substring of the plate"
//	@Param			make				query		string	false	"Substring of the make"
//	@Success		200					{object}	garagesdk.ReportResponse
//	@Failure		400					{object}	garagesdk.APIError
//	@Router			/v1/reports [get].
func (h *ReportHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	f, err := parseReportFilter(r)
	if err != nil {
		garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	rs, err := h.ReportService.Generate(r.Context(), httpx.OwnerID(r.Context()), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReportResponse(rs))
}

type ReminderHandler struct {
	ReminderService *service.ReminderService
	Window          time.Duration
}

// HandleList handles GET /v1/reminders
//
//	@Summary	Upcoming renewals and services
//	@Tags		Reports
//	@Security	BearerAuth
//	@Produce	json
//	@Param		window	query		string	false	"Look-ahead as a duration, e.g. 168h"
//	@Success	200		{array}		garagesdk.ReminderResponse
//	@Failure	400		{object}	garagesdk.APIError
//	@Router		/v1/reminders [get].
func (h *ReminderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	window := h.Window
	if s := r.URL.Query().Get(garagesdk.QueryWindow); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			garagesdk.ErrInvalidRequest.WithDescription("window must be a positive duration such as 72h").WriteError(w)
			return
		}
		window = d
	}

	rs, err := h.ReminderService.Upcoming(r.Context(), httpx.OwnerID(r.Context()), time.Now(), window)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReminderResponses(rs))
}
