package main

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

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"github.com/tommytoyou/bost-lawn-care/config"
	"github.com/tommytoyou/bost-lawn-care/controllers"
	"github.com/tommytoyou/bost-lawn-care/data"
	"github.com/tommytoyou/bost-lawn-care/obs"
	"github.com/tommytoyou/bost-lawn-care/routes"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/store"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

var version = "dev"

func main() {
	var (
		configPath  string
		port        string
		printRoutes bool
	)
	pflag.StringVar(&configPath, "config", "", "path to a YAML config file (default $BOST_CONFIG)")
	pflag.StringVar(&port, "port", "", "listen port, overrides PORT")
	pflag.BoolVar(&printRoutes, "print-routes", false, "print the registered routes at startup")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(configPath, port, printRoutes, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(configPath, port string, showRoutes bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.UsingDefaultPassword() {
		logger.Warn("admin password is the shipped default; set ADMIN_PASSWORD")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, cfg.OTLPEndpoint, cfg.Env, version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	backend, err := openBackend(cfg, logger)
	if err != nil {
		return err
	}
	defaults, err := data.LoadDefaults()
	if err != nil {
		return err
	}
	content := services.NewContentStore(store.New(backend, "bost_", logger), defaults, logger)

	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return err
	}
	events, closeEvents, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	gate, err := utils.NewAdminGate(cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry(), 0)
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		logger.Info("JWT_SECRET not set; admin sessions end when the server restarts")
	}

	sessions := services.NewWizardSessions(services.DefaultWizardTTL, nil, logger)
	bookings := services.NewBookingService(content, sessions,
		utils.NewReferenceGenerator(utils.ReferencePrefix, nil), notifier, events, logger)
	inquiries := services.NewInquiryService(content, notifier, events, nil, logger)
	digest := services.NewDigestService(content, notifier, cfg.DigestSchedule, nil, logger)

	scheduler := cron.New()
	if err := sessions.Schedule(scheduler); err != nil {
		return err
	}
	if err := digest.Schedule(scheduler); err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	if err := controllers.RegisterValidators(); err != nil {
		return err
	}
	r := routes.SetupRouter(routes.Handlers{
		Auth:      controllers.NewAuthHandler(gate, !cfg.Development(), logger),
		Services:  controllers.NewServiceHandler(content),
		Content:   controllers.NewContentHandler(content, time.Now(), nil),
		Invoices:  controllers.NewInvoiceHandler(content),
		Inquiries: controllers.NewInquiryHandler(inquiries),
		Bookings:  controllers.NewBookingHandler(bookings, content),
		Dashboard: controllers.NewDashboardHandler(content, nil),
	}, gate, cfg.AllowedOrigins, logger)
	if showRoutes {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Env, "version", version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openBackend(cfg config.App, logger *slog.Logger) (store.Backend, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DB_URL not set; content is kept in memory and lost on restart")
		return store.NewMemoryBackend(), nil
	}
	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	backend := store.NewGormBackend(db)
	if err := backend.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return backend, nil
}

func newNotifier(cfg config.App, logger *slog.Logger) (services.Notifier, error) {
	twilioCfg := services.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhoneNumber,
		To:         cfg.OwnerPhone,
	}
	if !twilioCfg.Enabled() {
		logger.Info("twilio not configured; notifications go to the log")
		return services.NewConsoleNotifier(logger), nil
	}
	return services.NewTwilioNotifier(twilioCfg, logger)
}

func newPublisher(cfg config.App, logger *slog.Logger) (services.EventPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		return nil, func() {}, nil
	}
	pub, err := services.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("publishing events", "exchange", cfg.AMQPExchange)
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warn("close event publisher", "error", err)
		}
	}, nil
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
