package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foundation-backend/config"
	"foundation-backend/routes"
	"foundation-backend/services"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foundation-backend",
	Short: "Foundation website API server",
	Long: `foundation-backend serves the public website API and the admin back office.
Without a subcommand it runs the HTTP server (same as "serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations, seed defaults and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <username>",
	Short: "Create an admin account (password read from stdin)",
	Long: `Create an admin account.

Examples:
  echo 's3cret-pass' | foundation-backend create-admin staff@foundation.org --name "เจ้าหน้าที่"`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateAdmin,
}

var adminName string

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "Admin User", "display name")
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

// bootstrap โหลด config, logger และเปิด DB ที่ทุกคำสั่งใช้ร่วมกัน
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := config.Connect(cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connect failed: %w", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.DB.Driver))
	return cfg, log, db, nil
}

func newStorage(cfg *config.Config) (services.Storage, error) {
	s := cfg.Storage
	if s.Driver == "oss" {
		oss, err := services.NewOSSStorage(s.OSSEndpoint, s.OSSAccessKey, s.OSSSecretKey, s.OSSBucket, s.PublicBase)
		if err != nil {
			return nil, err
		}
		return oss, nil
	}
	base := s.PublicBase
	if base == "" {
		base = strings.TrimRight(cfg.App.PublicURL, "/") + "/uploads"
	}
	return services.NewLocalStorage(s.Dir, base), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	config.SeedDatabase(db, cfg, log)

	store, err := newStorage(cfg)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	app := routes.SetupRouter(routes.Deps{DB: db, Config: cfg, Store: store, Log: log})

	cleanup, err := app.Blacklist.StartCleanup("@hourly", log)
	if err != nil {
		return err
	}
	defer cleanup.Stop()

	addr := ":" + cfg.App.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, log, _, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info("migrations applied")
	return log.Sync()
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && password == "" {
		return fmt.Errorf("read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	admin, err := services.CreateAdmin(cmd.Context(), db, adminName, args[0], password)
	if err != nil {
		return err
	}
	log.Info("admin created", zap.Uint("id", admin.ID), zap.String("username", admin.Username))
	return nil
}
