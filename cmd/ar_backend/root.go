package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/SscSPs/ar_statements/internal/platform/config"
	"github.com/SscSPs/ar_statements/internal/platform/mailer"
	"github.com/SscSPs/ar_statements/internal/platform/render"
	"github.com/SscSPs/ar_statements/internal/platform/storage"
	"github.com/SscSPs/ar_statements/internal/repositories/database/pgsql"
	"github.com/SscSPs/ar_statements/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ar_backend",
	Short: "Outstanding receivables reports and customer statements",
	Long: `ar_backend serves the outstanding receivables report and the customer
statement endpoints, and offers command-line access to printing and
emailing statements.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCmd.AddCommand(serveCmd, migrateCmd, statementCmd)
}

// app bundles what every command needs once the configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

func (a *app) Close() {
	database.ClosePgxPool(a.pool)
}

// newApp loads configuration, connects to the database and wires the
// services with their outbound collaborators.
func newApp(ctx context.Context) (*app, error) {
	logger := slog.Default()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	out, err := newOutbound(ctx, cfg)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	return &app{
		cfg:      cfg,
		logger:   logger,
		pool:     dbPool,
		services: services.NewServiceContainer(cfg, repos, out),
	}, nil
}

func newOutbound(ctx context.Context, cfg *config.Config) (services.Outbound, error) {
	var out services.Outbound

	renderer, err := render.NewRenderer(cfg.PDFEngine)
	if err != nil {
		return out, err
	}
	out.Renderer = renderer

	sender, err := mailer.NewSenderFromConfig(ctx, cfg)
	if err != nil {
		return out, fmt.Errorf("failed to initialize mail transport: %w", err)
	}
	out.Deliverer = mailer.NewMailer(sender, cfg.MailFromAddress)

	if cfg.AttachmentStore == config.AttachmentStoreS3 {
		store, err := storage.NewS3Storage(ctx, storage.S3Options{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			return out, err
		}
		out.BlobStore = store
	}
	return out, nil
}
