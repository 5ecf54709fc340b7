package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	bolt "go.etcd.io/bbolt"

	"github.com/mnprivacy/shield/config"
	"github.com/mnprivacy/shield/internal/gpc"
	"github.com/mnprivacy/shield/internal/tracker"
)

// gpcCmd probes broker URLs with the Sec-GPC header attached, using the
// persisted signal state from the local database
var gpcCmd = &cobra.Command{
	Use:   "gpc",
	Short: "probe urls with the global privacy control signal",
	Run: func(cmd *cobra.Command, _ []string) {
		err := probeURLs(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the gpc command and its flags on the root command
func init() {
	rootCmd.AddCommand(gpcCmd)

	gpcCmd.Flags().StringSlice("url", nil, "url to probe (repeatable)")
	gpcCmd.Flags().String("config", "./config/.config.yaml", "config file location")
	gpcCmd.Flags().Duration("timeout", 15*time.Second, "per-request timeout")
}

// probeURLs sends a GET to each url through the signal-aware transport and
// reports the response status plus whether the page looks like an opt-out form
func probeURLs(ctx context.Context) error {
	urls := k.Strings("url")
	if len(urls) == 0 {
		return fmt.Errorf("%w: --url", ErrFlagRequired)
	}

	cfgPath := k.String("config")

	cfg, err := config.Load(&cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := bolt.Open(cfg.Storage.Path, 0o600, nil)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", cfg.Storage.Path, err)
	}

	defer func() { _ = db.Close() }()

	store, err := tracker.New(db)
	if err != nil {
		return fmt.Errorf("initializing tracker store: %w", err)
	}

	state, err := gpc.NewState(store, cfg.GPC.EnabledByDefault)
	if err != nil {
		return fmt.Errorf("initializing gpc state: %w", err)
	}

	client := &http.Client{
		Transport: &gpc.Transport{State: state},
		Timeout:   k.Duration("timeout"),
	}

	for _, target := range urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			log.Error().Err(err).Str("url", target).Msg("building request")
			continue
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Error().Err(err).Str("url", target).Msg("probe failed")
			continue
		}

		_ = resp.Body.Close()

		log.Info().
			Str("url", target).
			Int("status", resp.StatusCode).
			Bool("signal", state.Enabled()).
			Bool("optOutPage", gpc.LooksLikeOptOutURL(target)).
			Msg("probe complete")
	}

	return nil
}
