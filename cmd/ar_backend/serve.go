package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/ar_statements/internal/handlers"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Runs pending migrations (unless --skip-migrations is given) and starts
the HTTP API on PORT.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Bool("skip-migrations", false, "Do not apply migrations on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	cfg, logger := a.cfg, a.logger

	if skip, _ := cmd.Flags().GetBool("skip-migrations"); !skip {
		if err := runMigrations(cfg, logger); err != nil {
			return err
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	sendLimiter, err := middleware.NewLimiter(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return err
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, a.services, sendLimiter, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}
