package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ImportCSV replaces the content of every table that has a matching
// <table>.csv file in dir. All tables are loaded in one transaction and the
// number of imported tables is returned.
func ImportCSV(ctx context.Context, db *sql.DB, dir string) (int, error) {
	logger := zerolog.Ctx(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Warn().Err(err).Msg("failed to rollback import")
		}
	}()

	imported := 0
	for _, table := range Tables {
		path := filepath.Join(dir, table+".csv")
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return 0, fmt.Errorf("stat %s: %w", path, err)
		}

		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return 0, fmt.Errorf("clear %s: %w", table, err)
		}
		copyQuery := fmt.Sprintf("COPY %s FROM '%s' (HEADER)", table, strings.ReplaceAll(path, "'", "''"))
		if _, err := tx.ExecContext(ctx, copyQuery); err != nil {
			return 0, fmt.Errorf("load %s: %w", table, err)
		}

		logger.Debug().Str("table", table).Str("file", path).Msg("table imported")
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return imported, nil
}
