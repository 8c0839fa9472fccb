package client

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/databricks/databricks-sql-go"
	dbsqllog "github.com/databricks/databricks-sql-go/logger"
	"github.com/de-tools/factory-atlas/pkg/services/config"
	"github.com/de-tools/factory-atlas/pkg/store/duckdb"
	storesql "github.com/de-tools/factory-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
	sf "github.com/snowflakedb/gosnowflake"
)

// Connection is an open warehouse connection and the SQL dialect it speaks.
type Connection struct {
	DB      *sql.DB
	Dialect storesql.Dialect
}

func (c *Connection) Close() error {
	return c.DB.Close()
}

// Open connects to the warehouse selected by cfg.Driver. Warehouse
// credentials are read from the profile registry.
func Open(ctx context.Context, cfg config.StoreConfig) (*Connection, error) {
	logger := zerolog.Ctx(ctx)

	dialect, err := storesql.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect {
	case storesql.DuckDB:
		db, err = duckdb.NewDB(duckdb.Settings{DbPath: cfg.DuckDBPath})
	case storesql.Snowflake:
		db, err = openSnowflake(ctx, cfg)
	case storesql.Databricks:
		db, err = openDatabricks(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", dialect, err)
	}

	logger.Info().
		Str("driver", string(dialect)).
		Str("profile", cfg.Profile).
		Msg("store connection opened")

	return &Connection{DB: db, Dialect: dialect}, nil
}

func openSnowflake(ctx context.Context, cfg config.StoreConfig) (*sql.DB, error) {
	registry, err := config.NewRegistry(cfg.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	sfCfg, err := registry.GetSnowflakeConfig(ctx, cfg.Profile)
	if err != nil {
		return nil, err
	}

	dsn, err := sf.DSN(sfCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build snowflake dsn: %w", err)
	}
	return sql.Open("snowflake", dsn)
}

func openDatabricks(ctx context.Context, cfg config.StoreConfig) (*sql.DB, error) {
	registry, err := config.NewRegistry(cfg.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	profile, err := registry.GetDatabricksConfig(ctx, cfg.Profile)
	if err != nil {
		return nil, err
	}

	// The driver logs through its own zerolog instance.
	level := zerolog.Ctx(ctx).GetLevel().String()
	if err := dbsqllog.SetLogLevel(level); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("level", level).Msg("failed to set databricks driver log level")
	}
	return sql.Open("databricks", DatabricksDSN(profile))
}

// DatabricksDSN builds a databricks-sql-go DSN from a profile.
func DatabricksDSN(profile *config.DatabricksProfile) string {
	host := strings.TrimPrefix(strings.TrimPrefix(profile.Host, "https://"), "http://")
	dsn := fmt.Sprintf("token:%s@%s%s", profile.Token, strings.TrimSuffix(host, "/"), profile.HTTPPath)

	params := url.Values{}
	if profile.Catalog != "" {
		params.Set("catalog", profile.Catalog)
	}
	if profile.Schema != "" {
		params.Set("schema", profile.Schema)
	}
	if qp := params.Encode(); qp != "" {
		dsn = dsn + "?" + qp
	}
	return dsn
}
