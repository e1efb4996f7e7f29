package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/good-yellow-bee/rollcall/internal/metrics"
	"github.com/good-yellow-bee/rollcall/internal/mutate"
	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/roster"
	"github.com/good-yellow-bee/rollcall/internal/session"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
	"github.com/good-yellow-bee/rollcall/internal/web"
)

var (
	serveConfigFile string
	serveAddress    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the activity page server",
	Long: `Run the rollcall web server. It serves the activity page, proxies
teacher logins and roster mutations to the sign-up service, and keeps
the rendered roster in sync after every change.

The CSRF key is read from web.csrf_key in the config file or from the
ROLLCALL_CSRF_KEY environment variable.

Example:
  rollcall serve --config rollcall.yaml --address :8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "config file path (optional)")
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	var cfg *Config

	// Load configuration from file if provided
	if serveConfigFile != "" {
		var err error
		cfg, err = LoadConfig(serveConfigFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = DefaultConfig()
	}

	// Override with CLI flags and environment
	if serveAddress != "" {
		cfg.Web.Address = serveAddress
	}
	if key := os.Getenv("ROLLCALL_CSRF_KEY"); key != "" {
		cfg.Web.CSRFKey = key
	}
	cfg.Verbose = verbose

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	// Wire the components
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout())
	store := session.NewStore(cfg.SessionTTL())
	manager := session.NewManager(store, client)
	sync := roster.NewSynchronizer(client)
	notices := notify.NewCenter(notify.DefaultTTL)
	ctrl := mutate.NewController(client, sync, notices)

	webSrv := web.NewServer(web.Config{
		CSRFKey:       cfg.Web.CSRFKey,
		SecureCookies: cfg.Web.SecureCookies,
		Verbose:       cfg.Verbose,
	}, manager, sync, ctrl, notices)

	httpSrv := &http.Server{
		Addr:         cfg.Web.Address,
		Handler:      webSrv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("rollcall serving on %s (service: %s)", cfg.Web.Address, client.BaseURL())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	})

	var metricsSrv *metrics.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewServer(cfg.Metrics.Address)
		g.Go(metricsSrv.Start)
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Printf("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				log.Printf("metrics shutdown: %v", err)
			}
		}
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
