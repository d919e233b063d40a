package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/villageboy09/kiosk/router"
)

var serveFlags struct {
	port string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the action endpoint (/api.php?action=...), the /v1 REST routes
and /health. Configuration comes from the environment or a .env file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.port, "port", "", "Listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, db, err := bootstrap()
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}
	if serveFlags.port != "" {
		cfg.Port = serveFlags.port
	}
	log.Info("config loaded", "config", cfg.Redacted())

	e := router.New(echo.New(), router.NewControllers(db, log, cfg.DB.QueryTimeout), log, cfg.CORSOrigins)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", ":"+cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	return g.Wait()
}
