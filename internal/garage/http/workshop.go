package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	msgMissingCode = "This link has no access code. Scan the QR code again."
	msgInvalidCode = "This access code is invalid or has expired. Ask the vehicle owner for a new QR code."
	msgServerError = "Something went wrong on our side. Please try again."
	msgSaved       = "The maintenance record was saved. Thank you."
)

type workshopPage struct {
	Title     string
	Message   string
	Action    string
	ExpiresAt string
	Today     string
}

// WorkshopHandler serves the public form reached from a QR code. It never
// shows anything about the vehicle; the code alone decides where the record
// goes.
type WorkshopHandler struct {
	WorkshopService *service.WorkshopService
	MaxUploadBytes  int64
}

// HandleGet handles GET /v1/maintenance/workshop-submit
//
//	@Summary	Workshop maintenance form
//	@Tags		Workshop access
//	@Produce	html
//	@Param		token	query	string	true	"Access code from the QR image"
//	@Success	200
//	@Failure	400	"Missing code"
//	@Failure	403	"Invalid or expired code"
//	@Router		/v1/maintenance/workshop-submit [get].
func (h *WorkshopHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("token")

	tok, err := h.WorkshopService.OpenForm(r.Context(), code)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderForm(w, r, http.StatusOK, tok, "")
}

// HandlePost handles POST /v1/maintenance/workshop-submit
//
//	@Summary	Submit maintenance as a workshop
//	@Tags		Workshop access
//	@Accept		multipart/form-data
//	@Produce	html
//	@Param		token			query		string	true	"Access code from the QR image"
//	@Param		type			formData	string	true	"Maintenance type"
//	@Param		date			formData	string	true	"Service date (YYYY-MM-DD)"
//	@Param		mileage			formData	int		false	"Odometer reading"
//	@Param		cost_cents		formData	int		false	"Cost in cents"
//	@Param		next_due		formData	string	false	"Next service date"
//	@Param		description		formData	string	false	"Notes"
//	@Param		workshop_tax_id	formData	string	false	"Workshop tax ID"
//	@Param		workshop_name	formData	string	false	"Workshop name"
//	@Param		invoice			formData	file	false	"Invoice (PDF or image)"
//	@Success	201
//	@Failure	400	"Missing code or invalid form"
//	@Failure	403	"Invalid or expired code"
//	@Failure	500
//	@Router		/v1/maintenance/workshop-submit [post].
func (h *WorkshopHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := r.URL.Query().Get("token")

	// Reject bad codes before reading the upload.
	tok, err := h.WorkshopService.OpenForm(ctx, code)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, tok, formMessage(err))
		return
	}
	fields, err := readMaintenanceFields(r)
	if err != nil {
		h.renderForm(w, r, http.StatusBadRequest, tok, err.Error())
		return
	}
	up, file, err := formFile(r, garagesdk.FieldInvoice)
	if err != nil {
		h.renderForm(w, r, http.StatusBadRequest, tok, formMessage(err))
		return
	}
	upload := &uploadedFile{upload: up, file: file}
	defer upload.Close()

	rec, err := h.WorkshopService.Submit(ctx, code, domain.WorkshopSubmission{
		Type:          fields.Type,
		PerformedAt:   fields.PerformedAt,
		Mileage:       fields.Mileage,
		Description:   fields.Description,
		CostCents:     fields.CostCents,
		NextDueAt:     fields.NextDueAt,
		WorkshopTaxID: r.FormValue(garagesdk.FieldWorkshopTaxID),
		WorkshopName:  r.FormValue(garagesdk.FieldWorkshopName),
	}, up)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTokenMissing), errors.Is(err, service.ErrTokenInvalid):
		h.renderError(w, r, err)
		return
	case errors.Is(err, service.ErrInvalidMaintenance),
		errors.Is(err, attachments.ErrTooLarge),
		errors.Is(err, attachments.ErrUnsupported),
		errors.Is(err, attachments.ErrEmpty):
		h.renderForm(w, r, http.StatusBadRequest, tok, err.Error())
		return
	default:
		h.renderError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("workshop submission accepted",
		"code", qraccess.Redact(code),
		"record_id", rec.ID,
	)
	h.render(w, r, http.StatusCreated, "message", workshopPage{Title: "Saved", Message: msgSaved})
}

func formMessage(err error) string {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return attachments.ErrTooLarge.Error()
	}
	return "The form could not be read. Please try again."
}

func (h *WorkshopHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, tok qraccess.AccessToken, msg string) {
	action := url.URL{Path: r.URL.Path, RawQuery: url.Values{"token": {tok.Code}}.Encode()}
	h.render(w, r, status, "form", workshopPage{
		Title:     "Record maintenance",
		Message:   msg,
		Action:    action.String(),
		ExpiresAt: tok.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"),
		Today:     time.Now().UTC().Format(garagesdk.DateLayout),
	})
}

func (h *WorkshopHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTokenMissing):
		h.render(w, r, http.StatusBadRequest, "message", workshopPage{Title: "Access code missing", Message: msgMissingCode})
	case errors.Is(err, service.ErrTokenInvalid):
		h.render(w, r, http.StatusForbidden, "message", workshopPage{Title: "Access denied", Message: msgInvalidCode})
	default:
		slogx.FromContext(r.Context()).Error("workshop submission failed", "err", err)
		h.render(w, r, http.StatusInternalServerError, "message", workshopPage{Title: "Error", Message: msgServerError})
	}
}

func (h *WorkshopHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data workshopPage) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("render workshop page", "template", name, "err", err)
	}
}
