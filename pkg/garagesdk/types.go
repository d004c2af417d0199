package garagesdk

import "time"

// DateLayout is the layout of date-only fields in forms and query strings.
const DateLayout = time.DateOnly

// ============================================================================
// Owners
// ============================================================================

type RegisterRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password"`
}

// UpdateOwnerRequest leaves empty fields unchanged.
type UpdateOwnerRequest struct {
	Name       string `json:"name,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// TOTPCode is required once the owner has enabled TOTP.
	TOTPCode string `json:"totp_code,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int           `json:"expires_in"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Owner       OwnerResponse `json:"owner"`
}

type OwnerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NationalID  string    `json:"national_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	TOTPEnabled bool      `json:"totp_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================================================================
// MFA
// ============================================================================

type TOTPEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"otpauth_url"`

	// QRImage is a data URL of a PNG for authenticator apps.
	QRImage string `json:"qr_image"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Vehicles
// ============================================================================

type VehicleRequest struct {
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Color string `json:"color,omitempty"`
}

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================================================================
// Maintenance and obligations
// ============================================================================

// Multipart form fields accepted by the maintenance endpoints, including the
// workshop submission form.
const (
	FieldVehicleID     = "vehicle_id"
	FieldType          = "type"
	FieldDate          = "date"
	FieldMileage       = "mileage"
	FieldDescription   = "description"
	FieldCostCents     = "cost_cents"
	FieldNextDue       = "next_due"
	FieldInvoice       = "invoice"
	FieldWorkshopTaxID = "workshop_tax_id"
	FieldWorkshopName  = "workshop_name"
)

// Multipart form fields accepted by the obligation endpoints.
const (
	FieldName      = "name"
	FieldIssuedAt  = "issued_at"
	FieldRenewalAt = "renewal_at"
	FieldDocument  = "document"
)

type MaintenanceResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	WorkshopID  string     `json:"workshop_id,omitempty"`
	Type        string     `json:"type"`
	PerformedAt time.Time  `json:"performed_at"`
	Mileage     int64      `json:"mileage"`
	Description string     `json:"description,omitempty"`
	CostCents   int64      `json:"cost_cents"`
	NextDueAt   *time.Time `json:"next_due_at,omitempty"`
	HasInvoice  bool       `json:"has_invoice"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ObligationResponse struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
	RenewalAt   *time.Time `json:"renewal_at,omitempty"`
	Current     bool       `json:"current"`
	HasDocument bool       `json:"has_document"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ============================================================================
// Workshop access
// ============================================================================

// QRResponse is returned when an owner issues a workshop access code.
type QRResponse struct {
	Code          string    `json:"code"`
	SubmissionURL string    `json:"submission_url"`
	QRImage       string    `json:"qr_image"`
	ExpiresAt     time.Time `json:"expires_at"`
	ExpiresIn     int       `json:"expires_in"`
}

// ============================================================================
// Reports and reminders
// ============================================================================

// Query parameters of GET /v1/reports.
const (
	QueryMaintenanceType = "maintenance_type"
	QueryFrom            = "from"
	QueryTo              = "to"
	QueryObligation      = "obligation_status" // "current" or "expired"
	QueryPlate           = "plate"
	QueryMake            = "make"
	QueryWindow          = "window"
)

type ReportResponse struct {
	Vehicles []VehicleReportResponse `json:"vehicles"`
}

type VehicleReportResponse struct {
	Vehicle     VehicleResponse       `json:"vehicle"`
	Maintenance []MaintenanceResponse `json:"maintenance"`
	Obligations []ObligationResponse  `json:"obligations"`
}

type ReminderResponse struct {
	Kind      string    `json:"kind"`
	VehicleID string    `json:"vehicle_id"`
	Plate     string    `json:"plate"`
	SubjectID string    `json:"subject_id"`
	Title     string    `json:"title"`
	DueAt     time.Time `json:"due_at"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`

	// Tokens reports the number of live workshop access codes.
	Tokens string `json:"tokens"`
}
