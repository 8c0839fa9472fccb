package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/de-tools/factory-atlas/pkg/metrics"
	"github.com/de-tools/factory-atlas/pkg/runtime/backend"
	"github.com/de-tools/factory-atlas/pkg/server"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Factory Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (default is ./factory-atlas.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", cfg.Logging.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	m := metrics.New(prometheus.DefaultRegisterer)

	b, err := backend.Open(ctx, cfg.Store, m)
	if err != nil {
		return fmt.Errorf("failed to open analytics backend: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close store connection")
		}
	}()

	logger.Info().
		Str("driver", cfg.Store.Driver).
		Str("profile", cfg.Store.Profile).
		Msg("analytics backend ready")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Analytics: b.Service,
			Metrics:   m,
			Gatherer:  prometheus.DefaultGatherer,
		},
	})

	if err := api.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
