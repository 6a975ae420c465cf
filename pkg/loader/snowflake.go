// pkg/loader/snowflake.go
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/snowflakedb/gosnowflake" // snowflake driver
	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/config"
	"github.com/emailops/email-ingress/pkg/model"
)

// SnowflakeLoader loads the raw email table straight from a Snowflake
// warehouse instead of a file export.
type SnowflakeLoader struct {
	db     *sqlx.DB
	cfg    *config.SnowflakeConfig
	logger *zap.Logger
}

// NewSnowflakeLoader connects to Snowflake and verifies the connection.
func NewSnowflakeLoader(ctx context.Context, cfg *config.SnowflakeConfig, logger *zap.Logger) (*SnowflakeLoader, error) {
	if cfg == nil {
		return nil, errors.New("snowflake configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	db, err := sqlx.Open("snowflake", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open Snowflake connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping Snowflake: %w", err)
	}

	logger.Info("Connected to Snowflake",
		zap.String("account", cfg.Account),
		zap.String("database", cfg.Database),
		zap.String("schema", cfg.Schema))

	return &SnowflakeLoader{db: db, cfg: cfg, logger: logger}, nil
}

// Load reads a whole table into a Dataset. SQL NULLs load as the sentinel;
// every value is stringified since the pipeline operates on text.
func (l *SnowflakeLoader) Load(ctx context.Context, table string) (*model.Dataset, error) {
	queryCtx, cancel := context.WithTimeout(ctx, l.cfg.QueryTimeout)
	defer cancel()

	rows, err := l.db.QueryxContext(queryCtx, fmt.Sprintf("SELECT * FROM %s", table)) //nolint:gosec // table name comes from operator config
	if err != nil {
		return nil, &LoadError{Path: table, Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &LoadError{Path: table, Err: err}
	}

	ds := model.NewDataset(columns)
	for rows.Next() {
		raw := make(map[string]interface{}, len(columns))
		if err := rows.MapScan(raw); err != nil {
			return nil, &LoadError{Path: table, Err: err}
		}
		row := make(model.Record, len(columns))
		for col, val := range raw {
			row[col] = stringifyCell(val)
		}
		ds.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Path: table, Err: err}
	}

	l.logger.Info("Loaded table from Snowflake",
		zap.String("table", table),
		zap.Int("rows", ds.Len()))

	return ds, nil
}

// Close releases the connection pool.
func (l *SnowflakeLoader) Close() error {
	return l.db.Close()
}

// stringifyCell converts a scanned cell to the pipeline's string domain.
func stringifyCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return model.Null
	case string:
		if val == "" {
			return model.Null
		}
		return val
	case []byte:
		if len(val) == 0 {
			return model.Null
		}
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
