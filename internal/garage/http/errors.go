package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// apiError translates a service error into its wire form. Unknown errors
// become server_error.
func apiError(err error) *garagesdk.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidOwner),
		errors.Is(err, service.ErrInvalidVehicle),
		errors.Is(err, service.ErrInvalidMaintenance),
		errors.Is(err, service.ErrInvalidObligation),
		errors.Is(err, service.ErrDocumentRequired),
		errors.Is(err, attachments.ErrEmpty):
		return garagesdk.ErrInvalidRequest.WithDescription(err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		return garagesdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrMFARequired):
		return garagesdk.ErrMFARequired
	case errors.Is(err, service.ErrInvalidTOTPCode):
		return garagesdk.ErrInvalidTOTP
	case errors.Is(err, service.ErrMFANotEnrolled):
		return garagesdk.ErrMFANotEnrolled
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		return garagesdk.ErrMFAAlreadyEnabled
	case errors.Is(err, service.ErrMFANotEnabled):
		return garagesdk.ErrMFANotEnabled

	case errors.Is(err, service.ErrOwnerNotFound):
		return garagesdk.ErrOwnerNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return garagesdk.ErrEmailTaken
	case errors.Is(err, service.ErrNationalIDTaken):
		return garagesdk.ErrNationalIDTaken

	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrOwnershipDenied):
		return garagesdk.ErrVehicleNotFound
	case errors.Is(err, service.ErrPlateTaken):
		return garagesdk.ErrPlateTaken
	case errors.Is(err, service.ErrMaintenanceNotFound):
		return garagesdk.ErrMaintenanceNotFound
	case errors.Is(err, service.ErrObligationNotFound):
		return garagesdk.ErrObligationNotFound
	case errors.Is(err, service.ErrNoInvoice),
		errors.Is(err, attachments.ErrNotFound):
		return garagesdk.ErrAttachmentNotFound

	case errors.Is(err, attachments.ErrTooLarge):
		return garagesdk.ErrTooLarge
	case errors.Is(err, attachments.ErrUnsupported):
		return garagesdk.ErrUnsupportedMediaType
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return garagesdk.ErrTooLarge
	}
	return garagesdk.ErrServerError
}

// writeServiceError logs unexpected failures and writes the mapped error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "err", err)
	}
	apiErr.WriteError(w)
}
