package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	httpapi "github.com/aussiebroadwan/garage/internal/garage/http"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/internal/garage/store/drivers/sqlite"
	"github.com/aussiebroadwan/garage/pkg/cryptox"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/aussiebroadwan/garage/pkg/qrx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// BuildVersion is set with -ldflags "-X .../app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application owns the garage service and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	files  *attachments.Storage
	signer *jwtx.HS256
	tokens *qraccess.Manager

	ownerService        *service.OwnerService
	mfaService          *service.MFAService
	vehicleService      *service.VehicleService
	maintenanceService  *service.MaintenanceService
	obligationService   *service.ObligationService
	qrService           *service.QRService
	workshopService     *service.WorkshopService
	reportService       *service.ReportService
	reminderService     *service.ReminderService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and wires every dependency.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "garage",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	files, err := attachments.New(cfg.UploadsDir, cfg.MaxUploadBytes)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}
	app.files = files

	signer, err := InitSigner(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	tokens, err := qraccess.NewManager(qraccess.Config{
		TTL: cfg.QRTokenTTL,
		Generator: qraccess.Generator{
			Alphabet: cfg.QRCodeAlphabet,
			Length:   cfg.QRCodeLength,
		},
	})
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize access tokens: %w", err)
	}
	app.tokens = tokens

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run serves HTTP until SIGINT/SIGTERM or a listener failure, then shuts
// down.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.housekeepingService.Start()
	app.logger.Info("garage listening",
		"addr", app.server.Addr,
		"version", BuildVersion,
		"workshop_base_url", app.cfg.WorkshopBaseURL,
		"qr_ttl", app.cfg.QRTokenTTL,
	)

	listenErr := make(chan error, 1)
	go func() { listenErr <- app.server.ListenAndServe() }()

	var serveErr error
	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("stop requested", "cause", context.Cause(ctx))
	}

	if err := app.Shutdown(); err != nil {
		return errors.Join(serveErr, fmt.Errorf("shutdown: %w", err))
	}
	return serveErr
}

// Shutdown drains in-flight requests within the grace period, stops the
// housekeeping loop and closes the database. Live access codes are
// memory-only and die with the process.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Warn("drain incomplete, closing connections", "error", err)
		_ = app.server.Close()
	}
	app.housekeepingService.Stop()

	dropped := app.tokens.Store().Len()
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	app.logger.Info("garage stopped", "access_codes_dropped", dropped)
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	renderer := qrx.Renderer{Size: app.cfg.QRImageSize}

	app.ownerService = &service.OwnerService{
		Store:     app.db,
		Files:     app.files,
		Signer:    app.signer,
		Issuer:    app.cfg.JWTIssuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.JWTIssuer,
		QR:     renderer,
	}
	app.vehicleService = &service.VehicleService{Store: app.db, Files: app.files}
	app.maintenanceService = &service.MaintenanceService{Store: app.db, Files: app.files}
	app.obligationService = &service.ObligationService{Store: app.db, Files: app.files}
	app.qrService = &service.QRService{
		Store:    app.db,
		Tokens:   app.tokens,
		Renderer: renderer,
		BaseURL:  app.cfg.WorkshopBaseURL,
	}
	app.workshopService = &service.WorkshopService{
		Store:       app.db,
		Tokens:      app.tokens,
		Maintenance: app.maintenanceService,
	}
	app.reportService = &service.ReportService{Store: app.db}
	app.reminderService = &service.ReminderService{
		Store:    app.db,
		Notifier: service.LogNotifier{Logger: app.logger},
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.tokens,
		app.reminderService,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ReminderWindow,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.tokens,
		app.logger,
	)

	router.MaxUploadBytes = app.cfg.MaxUploadBytes
	router.ReminderWindow = app.cfg.ReminderWindow
	router.OwnerService = app.ownerService
	router.MFAService = app.mfaService
	router.VehicleService = app.vehicleService
	router.MaintenanceService = app.maintenanceService
	router.ObligationService = app.obligationService
	router.QRService = app.qrService
	router.WorkshopService = app.workshopService
	router.ReportService = app.reportService
	router.ReminderService = app.reminderService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler exposes the routed HTTP handler without starting a listener.
func (app *Application) Handler() http.Handler { return app.router }

// Close releases the database for an application that was never Run.
func (app *Application) Close() error { return app.db.Close() }
