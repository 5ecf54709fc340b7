package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	bolt "go.etcd.io/bbolt"

	"github.com/mnprivacy/shield/config"
	"github.com/mnprivacy/shield/internal/api"
	"github.com/mnprivacy/shield/internal/brokers"
	"github.com/mnprivacy/shield/internal/gpc"
	"github.com/mnprivacy/shield/internal/pdfgen"
	"github.com/mnprivacy/shield/internal/session"
	"github.com/mnprivacy/shield/internal/tracker"
)

// serveCmd is the cobra command that starts the shield API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the shield api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command and its flags on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().String("config", "./config/.config.yaml", "config file location")
}

// serve initializes dependencies and starts the shield API server
func serve(ctx context.Context) error {
	cfgPath := k.String("config")

	cfg, err := config.Load(&cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Server.Debug = k.Bool("debug")
	cfg.Server.Pretty = k.Bool("pretty")

	db, err := bolt.Open(cfg.Storage.Path, 0o600, nil)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", cfg.Storage.Path, err)
	}

	defer func() { _ = db.Close() }()

	handler, err := setupHandler(db, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGracePeriod)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("listen", cfg.Server.Listen).Str("db", cfg.Storage.Path).Msg("starting shield service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// setupHandler wires the stores, broker directory, and renderer into the API
// handler
func setupHandler(db *bolt.DB, cfg *config.Config) (*api.Handler, error) {
	store, err := tracker.New(db, tracker.WithUpcomingWindow(cfg.Tracker.UpcomingWindowDays))
	if err != nil {
		return nil, fmt.Errorf("initializing tracker store: %w", err)
	}

	sessions, err := session.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	state, err := gpc.NewState(store, cfg.GPC.EnabledByDefault)
	if err != nil {
		return nil, fmt.Errorf("initializing gpc state: %w", err)
	}

	directory, err := brokers.Load()
	if err != nil {
		return nil, fmt.Errorf("loading broker directory: %w", err)
	}

	handler := api.NewHandler(directory, store, sessions, state, pdfgen.New(),
		api.WithMaxBodySize(cfg.Server.MaxBodySize),
		api.WithAllowedOrigins(cfg.Server.AllowedOrigins),
		api.WithUpcomingWindow(cfg.Tracker.UpcomingWindowDays),
	)

	return handler, nil
}
