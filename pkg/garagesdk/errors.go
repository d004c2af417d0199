package garagesdk

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/garage/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeUnauthorized         = "unauthorized"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeMFARequired          = "mfa_required"
	ErrorCodeInvalidTOTP          = "invalid_totp_code"
	ErrorCodeMFANotEnrolled       = "mfa_not_enrolled"
	ErrorCodeMFAAlreadyEnabled    = "mfa_already_enabled"
	ErrorCodeMFANotEnabled        = "mfa_not_enabled"
	ErrorCodeOwnerNotFound        = "owner_not_found"
	ErrorCodeEmailTaken           = "email_taken"
	ErrorCodeNationalIDTaken      = "national_id_taken"
	ErrorCodeVehicleNotFound      = "vehicle_not_found"
	ErrorCodePlateTaken           = "plate_taken"
	ErrorCodeMaintenanceNotFound  = "maintenance_not_found"
	ErrorCodeObligationNotFound   = "obligation_not_found"
	ErrorCodeAttachmentNotFound   = "attachment_not_found"
	ErrorCodeTooLarge             = "attachment_too_large"
	ErrorCodeUnsupportedMediaType = "unsupported_media_type"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is the JSON error body of every endpoint. It is written by the
// server and returned by the client.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches any *APIError with the same code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WithDescription returns a copy carrying a request-specific description.
func (e *APIError) WithDescription(desc string) *APIError {
	c := *e
	c.Description = desc
	return &c
}

func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "missing or invalid access token",
	}
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "email or password is incorrect",
	}
	ErrMFARequired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeMFARequired,
		Description: "a TOTP code is required",
	}
	ErrInvalidTOTP = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidTOTP,
		Description: "the TOTP code is invalid",
	}
	ErrMFANotEnrolled = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMFANotEnrolled,
		Description: "start TOTP enrollment first",
	}
	ErrMFAAlreadyEnabled = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeMFAAlreadyEnabled,
		Description: "TOTP is already enabled",
	}
	ErrMFANotEnabled = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMFANotEnabled,
		Description: "TOTP is not enabled",
	}
	ErrOwnerNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeOwnerNotFound,
		Description: "owner not found",
	}
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailTaken,
		Description: "email is already registered",
	}
	ErrNationalIDTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeNationalIDTaken,
		Description: "national ID is already registered",
	}
	ErrVehicleNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeVehicleNotFound,
		Description: "vehicle not found",
	}
	ErrPlateTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodePlateTaken,
		Description: "plate is already registered",
	}
	ErrMaintenanceNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeMaintenanceNotFound,
		Description: "maintenance record not found",
	}
	ErrObligationNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeObligationNotFound,
		Description: "obligation not found",
	}
	ErrAttachmentNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeAttachmentNotFound,
		Description: "no file is attached",
	}
	ErrTooLarge = &APIError{
		StatusCode:  http.StatusRequestEntityTooLarge,
		Code:        ErrorCodeTooLarge,
		Description: "the attachment exceeds the size limit",
	}
	ErrUnsupportedMediaType = &APIError{
		StatusCode:  http.StatusUnsupportedMediaType,
		Code:        ErrorCodeUnsupportedMediaType,
		Description: "attachments must be PDF or image files",
	}
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
