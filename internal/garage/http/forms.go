package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
)

// multipartMemory is how much of a form is buffered in memory before
// spilling to temporary files.
const multipartMemory = 1 << 20

// formOverhead allows for the non-file fields of an upload form.
const formOverhead = 64 << 10

var errBadForm = errors.New("malformed form")

// parseForm accepts multipart and urlencoded bodies, capping the total size
// at maxUpload plus room for the text fields.
func parseForm(w http.ResponseWriter, r *http.Request, maxUpload int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+formOverhead)

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return err
			}
			return fmt.Errorf("%w: %v", errBadForm, err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errBadForm, err)
	}
	return nil
}

// formFile returns the uploaded file in field, or nil when none was sent.
// The caller closes the returned file.
func formFile(r *http.Request, field string) (*domain.Upload, multipart.File, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errBadForm, err)
	}
	return &domain.Upload{Filename: hdr.Filename, Size: hdr.Size, Content: f}, f, nil
}

// uploadedFile pairs an optional upload with the multipart file behind it.
type uploadedFile struct {
	upload *domain.Upload
	file   multipart.File
}

func (u *uploadedFile) Close() {
	if u != nil && u.file != nil {
		_ = u.file.Close()
	}
}

// writeFormError answers a form that could not be read.
func writeFormError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		garagesdk.ErrTooLarge.WriteError(w)
		return
	}
	garagesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
}

// parseDate accepts YYYY-MM-DD and RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(garagesdk.DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date (want YYYY-MM-DD)", s)
	}
	return t.UTC(), nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalInt(s, name string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return n, nil
}

// maintenanceFields holds the text fields shared by the owner and workshop
// maintenance forms.
type maintenanceFields struct {
	Type        string
	PerformedAt time.Time
	Mileage     int64
	Description string
	CostCents   int64
	NextDueAt   *time.Time
}

func readMaintenanceFields(r *http.Request) (maintenanceFields, error) {
	var (
		f   maintenanceFields
		err error
	)
	f.Type = r.FormValue(garagesdk.FieldType)
	f.Description = r.FormValue(garagesdk.FieldDescription)

	if d := r.FormValue(garagesdk.FieldDate); strings.TrimSpace(d) != "" {
		if f.PerformedAt, err = parseDate(d); err != nil {
			return f, err
		}
	}
	if f.Mileage, err = parseOptionalInt(r.FormValue(garagesdk.FieldMileage), "mileage"); err != nil {
		return f, err
	}
	if f.CostCents, err = parseOptionalInt(r.FormValue(garagesdk.FieldCostCents), "cost"); err != nil {
		return f, err
	}
	if f.NextDueAt, err = parseOptionalDate(r.FormValue(garagesdk.FieldNextDue)); err != nil {
		return f, err
	}
	return f, nil
}
