package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/httpx"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/aussiebroadwan/garage/pkg/slogx"

	_ "github.com/aussiebroadwan/garage/api/garage" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	tokens       *qraccess.Manager

	// MaxUploadBytes caps invoice and document uploads.
	MaxUploadBytes int64
	// ReminderWindow is the default look-ahead of GET /v1/reminders.
	ReminderWindow time.Duration

	OwnerService       *service.OwnerService
	MFAService         *service.MFAService
	VehicleService     *service.VehicleService
	MaintenanceService *service.MaintenanceService
	ObligationService  *service.ObligationService
	QRService          *service.QRService
	WorkshopService    *service.WorkshopService
	ReportService      *service.ReportService
	ReminderService    *service.ReminderService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	tokens *qraccess.Manager,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		verifier:       verifier,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		logger:         logger,
		store:          st,
		tokens:         tokens,
		MaxUploadBytes: attachments.DefaultMaxBytes,
		ReminderWindow: service.DefaultReminderWindow,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOwners()
	r.registerMFA()
	r.registerVehicles()
	r.registerMaintenance()
	r.registerObligations()
	r.registerWorkshop()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Garage API
//	@version		0.1.0
//	@description	Vehicle maintenance records, legal obligations and QR based workshop access.
//	@description
//	@description				Owner endpoints take an HS256 bearer token from /v1/auth/login.
//	@description				Workshops authenticate only with the short code carried by a QR image.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/garage
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Owner access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// owner wraps h with authentication and a per-owner rate limit.
func (r *Router) owner(h http.HandlerFunc, l httpx.Limit) http.Handler {
	return httpx.Chain(h,
		httpx.Authn(r.verifier),
		httpx.RateLimitByOwner(l),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{OwnerService: r.OwnerService}

	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.Strict),
		),
	)
	// Login is limited per address; the body is never read by the limiter.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.Strict),
		),
	)
}

func (r *Router) registerOwners() {
	h := &OwnerHandler{OwnerService: r.OwnerService}

	r.Mux.Handle("GET /v1/owners/me", r.owner(h.HandleGet, httpx.Lenient))
	r.Mux.Handle("PUT /v1/owners/me", r.owner(h.HandleUpdate, httpx.Moderate))
	r.Mux.Handle("DELETE /v1/owners/me", r.owner(h.HandleDelete, httpx.Moderate))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	r.Mux.Handle("POST /v1/mfa/totp/enroll", r.owner(h.HandleEnroll, httpx.Moderate))
	// Guessing TOTP codes must stay expensive.
	r.Mux.Handle("POST /v1/mfa/totp/verify", r.owner(h.HandleVerify, httpx.Strict))
	r.Mux.Handle("DELETE /v1/mfa/totp", r.owner(h.HandleDisable, httpx.Strict))
}

func (r *Router) registerVehicles() {
	h := &VehicleHandler{VehicleService: r.VehicleService}

	r.Mux.Handle("GET /v1/vehicles", r.owner(h.HandleList, httpx.Lenient))
	r.Mux.Handle("POST /v1/vehicles", r.owner(h.HandleCreate, httpx.Moderate))
	r.Mux.Handle("GET /v1/vehicles/{plate}", r.owner(h.HandleGet, httpx.Lenient))
	r.Mux.Handle("PUT /v1/vehicles/{plate}", r.owner(h.HandleUpdate, httpx.Moderate))
	r.Mux.Handle("DELETE /v1/vehicles/{plate}", r.owner(h.HandleDelete, httpx.Moderate))
}

func (r *Router) registerMaintenance() {
	h := &MaintenanceHandler{
		MaintenanceService: r.MaintenanceService,
		MaxUploadBytes:     r.MaxUploadBytes,
	}
	qr := &QRHandler{QRService: r.QRService}

	r.Mux.Handle("POST /v1/maintenance", r.owner(h.HandleCreate, httpx.Moderate))
	r.Mux.Handle("GET /v1/vehicles/{vehicleID}/maintenance", r.owner(h.HandleListForVehicle, httpx.Lenient))
	r.Mux.Handle("GET /v1/maintenance/{id}", r.owner(h.HandleGet, httpx.Lenient))
	r.Mux.Handle("PUT /v1/maintenance/{id}", r.owner(h.HandleUpdate, httpx.Moderate))
	r.Mux.Handle("DELETE /v1/maintenance/{id}", r.owner(h.HandleDelete, httpx.Moderate))
	r.Mux.Handle("GET /v1/maintenance/{id}/invoice", r.owner(h.HandleInvoice, httpx.Lenient))

	r.Mux.Handle("POST /v1/qr/maintenance/{vehicleID}", r.owner(qr.HandleIssue, httpx.Moderate))
}

func (r *Router) registerObligations() {
	h := &ObligationHandler{
		ObligationService: r.ObligationService,
		MaxUploadBytes:    r.MaxUploadBytes,
	}

	r.Mux.Handle("GET /v1/obligations", r.owner(h.HandleListForOwner, httpx.Lenient))
	r.Mux.Handle("POST /v1/obligations", r.owner(h.HandleCreate, httpx.Moderate))
	r.Mux.Handle("GET /v1/vehicles/{vehicleID}/obligations", r.owner(h.HandleListForVehicle, httpx.Lenient))
	r.Mux.Handle("GET /v1/obligations/{id}", r.owner(h.HandleGet, httpx.Lenient))
	r.Mux.Handle("PUT /v1/obligations/{id}", r.owner(h.HandleUpdate, httpx.Moderate))
	r.Mux.Handle("DELETE /v1/obligations/{id}", r.owner(h.HandleDelete, httpx.Moderate))
	r.Mux.Handle("GET /v1/obligations/{id}/document", r.owner(h.HandleDocument, httpx.Lenient))
}

func (r *Router) registerWorkshop() {
	h := &WorkshopHandler{
		WorkshopService: r.WorkshopService,
		MaxUploadBytes:  r.MaxUploadBytes,
	}

	// The form is public and only displays; submissions are limited per
	// address and code so one workshop cannot flood a vehicle's log.
	r.Mux.Handle("GET /v1/maintenance/workshop-submit",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.Lenient),
		),
	)
	r.Mux.Handle("POST /v1/maintenance/workshop-submit",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.RateLimit(httpx.Strict, httpx.JoinKeys(httpx.ClientIP, httpx.QueryKey("token"))),
		),
	)
}

func (r *Router) registerReports() {
	reports := &ReportHandler{ReportService: r.ReportService}
	reminders := &ReminderHandler{ReminderService: r.ReminderService, Window: r.ReminderWindow}

	r.Mux.Handle("GET /v1/reports", r.owner(reports.HandleGenerate, httpx.Moderate))
	r.Mux.Handle("GET /v1/reminders", r.owner(reminders.HandleList, httpx.Lenient))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.tokens),
			httpx.RateLimitByIP(httpx.Public),
		),
	)
}
