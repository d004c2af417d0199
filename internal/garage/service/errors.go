package service

import "errors"

// Owner and session errors.
var (
	ErrInvalidOwner       = errors.New("invalid owner data")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNationalIDTaken    = errors.New("national ID already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOwnerNotFound      = errors.New("owner not found")
)

// MFA errors.
var (
	ErrMFARequired       = errors.New("TOTP code required")
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnrolled    = errors.New("TOTP not enrolled")
	ErrMFANotEnabled     = errors.New("TOTP not enabled")
	ErrMFAAlreadyEnabled = errors.New("TOTP already enabled")
)

// Vehicle and record errors. Records that belong to another owner are
// reported as not found.
var (
	ErrInvalidVehicle      = errors.New("invalid vehicle data")
	ErrPlateTaken          = errors.New("plate already registered")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidMaintenance  = errors.New("invalid maintenance data")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
	ErrNoInvoice           = errors.New("maintenance record has no invoice")
	ErrInvalidObligation   = errors.New("invalid obligation data")
	ErrDocumentRequired    = errors.New("obligation document is required")
	ErrObligationNotFound  = errors.New("obligation not found")
)

// QR issuance and workshop submission errors.
var (
	ErrOwnershipDenied = errors.New("vehicle not found or not owned by caller")
	ErrTokenMissing    = errors.New("access code missing")
	ErrTokenInvalid    = errors.New("access code invalid or expired")
)
