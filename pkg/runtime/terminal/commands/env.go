package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/runtime/backend"
	"github.com/de-tools/factory-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
)

// Opener connects the analytics pipeline to the configured store.
type Opener func(ctx context.Context, cfg config.StoreConfig) (*backend.Backend, error)

// Env carries the settings shared by every command. The root command binds
// its persistent flags to these fields.
type Env struct {
	ConfigPath string
	AsOf       string
	Format     string
	Timeout    time.Duration

	Now       func() time.Time
	Open      Opener
	Output    io.Writer
	ErrOutput io.Writer
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

func (e *Env) output() io.Writer {
	if e.Output != nil {
		return e.Output
	}
	return os.Stdout
}

func (e *Env) errOutput() io.Writer {
	if e.ErrOutput != nil {
		return e.ErrOutput
	}
	return os.Stderr
}

func (e *Env) asOf() (time.Time, error) {
	t, err := period.ParseAsOf(e.AsOf, e.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD, YYYY-MM or RFC 3339", e.AsOf)
	}
	return t, nil
}

// session loads the configuration, prepares a logger on the error output and
// hands an open backend to fn. The backend is closed when fn returns.
func (e *Env) session(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, b *backend.Backend) error) error {
	cfg, err := config.Load(e.ConfigPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", cfg.Logging.Level, err)
	}
	logger := zerolog.New(e.errOutput()).Level(level).With().Timestamp().Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	open := e.Open
	if open == nil {
		open = func(ctx context.Context, cfg config.StoreConfig) (*backend.Backend, error) {
			return backend.Open(ctx, cfg, nil)
		}
	}

	b, err := open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close store connection")
		}
	}()

	return fn(ctx, cfg, b)
}

// render writes report in the selected format. JSON output uses the API
// representation in apiValue.
func (e *Env) render(report *domain.Report, apiValue any) error {
	switch e.Format {
	case "", FormatTable:
		return export.NewReporter(e.output()).Handle(report)
	case FormatText:
		return export.NewTextReporter(e.output()).Handle(report)
	case FormatJSON:
		enc := json.NewEncoder(e.output())
		enc.SetIndent("", "  ")
		return enc.Encode(apiValue)
	default:
		return fmt.Errorf("unsupported format %q: expected %s, %s or %s", e.Format, FormatTable, FormatText, FormatJSON)
	}
}
