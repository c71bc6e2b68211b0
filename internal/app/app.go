package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/koinonia-app/koinonia/config"
	"github.com/koinonia-app/koinonia/internal/database"
	"github.com/koinonia-app/koinonia/internal/domain"
	httpHandler "github.com/koinonia-app/koinonia/internal/http"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/internal/repository"
	"github.com/koinonia-app/koinonia/internal/service"
	"github.com/koinonia-app/koinonia/pkg/geocode"
	"github.com/koinonia-app/koinonia/pkg/logger"
	"github.com/koinonia-app/koinonia/pkg/mailer"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config   *config.Config
	logger   logger.Logger
	db       *sql.DB
	mailer   mailer.Mailer
	geocoder geocode.Geocoder

	// Repositories
	userRepo    domain.UserRepository
	profileRepo domain.PublicProfileRepository
	formRepo    domain.FormRepository
	memberRepo  domain.MemberRepository
	eventRepo   domain.EventRepository
	studyRepo   domain.StudyRepository
	videoRepo   domain.VideoRepository
	pastorRepo  domain.PastorRepository
	pageRepo    domain.PageRepository

	// Services
	authService   *service.AuthService
	userService   *service.UserService
	formService   *service.FormService
	memberService *service.MemberService
	eventService  *service.EventService
	studyService  *service.StudyService
	videoService  *service.VideoService
	pastorService *service.PastorService
	pageService   *service.PageService

	// HTTP
	mux      *http.ServeMux
	server   *http.Server
	serverMu sync.RWMutex
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithMockGeocoder configures the app to use a mock geocoder
func WithMockGeocoder(g geocode.Geocoder) AppOption {
	return func(a *App) {
		a.geocoder = g
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Initialize runs all initialization steps in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitMailer(); err != nil {
		return err
	}
	if err := a.InitGeocoder(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// InitDB initializes the database connection and the schema
func (a *App) InitDB() error {
	if a.db == nil {
		a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, dbname: %s",
			a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
			a.config.Database.SSLMode, a.config.Database.DBName))

		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db, a.config.RootEmail, a.config.RootPassword); err != nil {
		a.db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		SiteURL:      a.config.SiteURL,
	})

	return nil
}

// InitGeocoder initializes the geocoding client
func (a *App) InitGeocoder() error {
	if a.geocoder != nil {
		return nil
	}

	a.geocoder = geocode.NewGoogleGeocoder(geocode.Config{
		Endpoint: a.config.Geocoding.Endpoint,
		APIKey:   a.config.Geocoding.APIKey,
	})

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.profileRepo = repository.NewPublicProfileRepository(a.db)
	a.formRepo = repository.NewFormRepository(a.db)
	a.memberRepo = repository.NewMemberRepository(a.db)
	a.eventRepo = repository.NewEventRepository(a.db)
	a.studyRepo = repository.NewStudyRepository(a.db)
	a.videoRepo = repository.NewVideoRepository(a.db)
	a.pastorRepo = repository.NewPastorRepository(a.db)
	a.pageRepo = repository.NewPageRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	var err error
	a.authService, err = service.NewAuthService(service.AuthServiceConfig{
		UserRepository: a.userRepo,
		PrivateKey:     a.config.Security.PasetoPrivateKeyBytes,
		PublicKey:      a.config.Security.PasetoPublicKeyBytes,
		Logger:         a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}

	a.userService = service.NewUserService(
		a.userRepo,
		a.profileRepo,
		a.authService,
		a.geocoder,
		a.mailer,
		a.logger,
	)
	a.formService = service.NewFormService(a.formRepo, a.authService, a.logger)
	a.memberService = service.NewMemberService(a.memberRepo, a.authService, a.logger)
	a.eventService = service.NewEventService(a.eventRepo, a.authService, a.logger)
	a.studyService = service.NewStudyService(a.studyRepo, a.authService, a.logger)
	a.videoService = service.NewVideoService(a.videoRepo, a.authService, a.logger)
	a.pastorService = service.NewPastorService(a.pastorRepo, a.authService, a.logger)
	a.pageService = service.NewPageService(a.pageRepo, a.authService, a.logger)

	return nil
}

// InitHandlers initializes the HTTP handlers and registers their routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	publicKey := a.config.Security.PasetoPublicKey

	authHandler := httpHandler.NewAuthHandler(a.userService, publicKey, a.logger)
	userHandler := httpHandler.NewUserHandler(a.userService, publicKey, a.logger)
	formHandler := httpHandler.NewFormHandler(a.formService, publicKey, a.logger)
	memberHandler := httpHandler.NewMemberHandler(a.memberService, publicKey, a.logger)
	eventHandler := httpHandler.NewEventHandler(a.eventService, publicKey, a.logger)
	studyHandler := httpHandler.NewStudyHandler(a.studyService, publicKey, a.logger)
	videoHandler := httpHandler.NewVideoHandler(a.videoService, publicKey, a.logger)
	pastorHandler := httpHandler.NewPastorHandler(a.pastorService, publicKey, a.logger)
	pageHandler := httpHandler.NewPageHandler(a.pageService, publicKey, a.logger)
	publicHandler := httpHandler.NewPublicHandler(httpHandler.PublicHandlerConfig{
		FormService:   a.formService,
		MemberService: a.memberService,
		PageService:   a.pageService,
		EventService:  a.eventService,
		StudyService:  a.studyService,
		VideoService:  a.videoService,
		PastorService: a.pastorService,
		UserService:   a.userService,
		Logger:        a.logger,
	})

	authHandler.RegisterRoutes(a.mux)
	userHandler.RegisterRoutes(a.mux)
	formHandler.RegisterRoutes(a.mux)
	memberHandler.RegisterRoutes(a.mux)
	eventHandler.RegisterRoutes(a.mux)
	studyHandler.RegisterRoutes(a.mux)
	videoHandler.RegisterRoutes(a.mux)
	pastorHandler.RegisterRoutes(a.mux)
	pageHandler.RegisterRoutes(a.mux)
	publicHandler.RegisterRoutes(a.mux)

	return nil
}

// Start starts the HTTP server and blocks until it stops
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := a.server
	a.serverMu.Unlock()

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	var shutdownErr error
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error shutting down HTTP server")
			shutdownErr = err
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if shutdownErr == nil {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

// GetMux exposes the route multiplexer, mainly for tests
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetLogger exposes the application logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetDB exposes the database handle, mainly for tests
func (a *App) GetDB() *sql.DB {
	return a.db
}
