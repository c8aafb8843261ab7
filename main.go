package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/exhibitly/billing"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/handlers"
	"github.com/danielhkuo/exhibitly/mail"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/router"
	"github.com/danielhkuo/exhibitly/uploads"
)

func main() {
	var err error

	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database; the driver name matches DatabaseType
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	if cfg.DatabaseType == "sqlite" {
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	services := newServices(cfg)

	// Create router
	mux := router.NewRouter(dbConn, cfg, services)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.SiteURL, mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newServices builds the managed providers that are configured. Missing
// credentials leave a service nil and its routes answer 503.
func newServices(cfg cliparse.Config) handlers.Services {
	var services handlers.Services

	if cfg.StripeSecretKey != "" {
		services.Billing = billing.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret, nil)
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set, billing disabled")
	}

	if cfg.ResendAPIKey != "" {
		services.Mail = mail.NewResend(cfg.ResendAPIKey)
	} else {
		slog.Warn("RESEND_API_KEY not set, contact form disabled")
	}

	if cfg.UploadBucket != "" {
		issuer, err := uploads.NewIssuer(context.Background(), uploads.Config{
			Bucket:        cfg.UploadBucket,
			Region:        cfg.UploadRegion,
			Endpoint:      cfg.UploadEndpoint,
			PublicBaseURL: cfg.UploadPublicBaseURL,
			Expiry:        cfg.UploadURLExpiry,
		})
		if err != nil {
			slog.Error("upload issuer setup failed, uploads disabled", "error", err)
		} else {
			services.Uploads = issuer
		}
	} else {
		slog.Warn("UPLOAD_BUCKET not set, uploads disabled")
	}

	return services
}
