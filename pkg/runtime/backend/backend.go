package backend

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/factory-atlas/pkg/metrics"
	"github.com/de-tools/factory-atlas/pkg/services/analytics"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/de-tools/factory-atlas/pkg/store/client"
	storesql "github.com/de-tools/factory-atlas/pkg/store/sql"
)

// Backend is the analytics service bound to an open warehouse connection.
type Backend struct {
	Service analytics.Service
	DB      *sql.DB
	Dialect storesql.Dialect
}

// Open connects to the configured store and wires the analytics pipeline on top of it.
func Open(ctx context.Context, cfg config.StoreConfig, m *metrics.Metrics) (*Backend, error) {
	conn, err := client.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo, err := storesql.NewRepository(conn.DB, conn.Dialect)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	return &Backend{
		Service: analytics.NewDefaultService(repo, m),
		DB:      conn.DB,
		Dialect: conn.Dialect,
	}, nil
}

func (b *Backend) Close() error {
	if b == nil || b.DB == nil {
		return nil
	}
	return b.DB.Close()
}
