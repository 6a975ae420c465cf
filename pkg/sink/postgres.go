// pkg/sink/postgres.go
package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/config"
	"github.com/emailops/email-ingress/pkg/model"
)

// AuditSink records cleaning operations and run statistics in PostgreSQL so
// analysts can trace what each run changed.
type AuditSink struct {
	db     *sqlx.DB
	cfg    *config.PostgresConfig
	logger *zap.Logger
}

// NewAuditSink connects to PostgreSQL and ensures the tracking tables exist.
func NewAuditSink(ctx context.Context, cfg *config.PostgresConfig, logger *zap.Logger) (*AuditSink, error) {
	if cfg == nil {
		return nil, errors.New("postgres configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	db, err := sqlx.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	sink := &AuditSink{db: db, cfg: cfg, logger: logger}
	if err := sink.setupTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup audit tables: %w", err)
	}

	return sink, nil
}

// setupTables ensures the cleaned_on_ingress and ingress_runs tables exist.
func (s *AuditSink) setupTables(ctx context.Context) error {
	setupCtx, cancel := context.WithTimeout(ctx, s.cfg.StatementTimeout)
	defer cancel()

	createSQL := `
		CREATE TABLE IF NOT EXISTS public.cleaned_on_ingress (
			id SERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			column_name TEXT NOT NULL,
			original_value TEXT,
			new_value TEXT,
			row_index INTEGER NOT NULL,
			cleaning_operation TEXT NOT NULL,
			cleaning_reason TEXT NOT NULL,
			cleaned_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS public.ingress_runs (
			run_id TEXT PRIMARY KEY,
			initial_rows INTEGER NOT NULL,
			junk_rows INTEGER NOT NULL,
			final_rows INTEGER NOT NULL,
			completed_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := s.db.ExecContext(setupCtx, createSQL); err != nil {
		return fmt.Errorf("failed to create tracking tables: %w", err)
	}

	s.logger.Info("Ensured audit tables exist")
	return nil
}

// RecordOperations batch inserts cleaning operations into the tracking table.
func (s *AuditSink) RecordOperations(ctx context.Context, operations []model.CleaningOperation) error {
	if len(operations) == 0 {
		return nil
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.cfg.StatementTimeout)
	defer cancel()

	tx, err := s.db.BeginTxx(insertCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.Error(err))
			}
		}
	}()

	stmt, err := tx.PreparexContext(insertCtx, `
		INSERT INTO public.cleaned_on_ingress
		(run_id, column_name, original_value, new_value,
		 row_index, cleaning_operation, cleaning_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, op := range operations {
		if _, err = stmt.ExecContext(insertCtx,
			op.RunID,
			op.ColumnName,
			op.OriginalValue,
			op.NewValue,
			op.RowIndex,
			op.CleaningOperation,
			op.CleaningReason,
		); err != nil {
			return fmt.Errorf("failed to insert cleaning operation: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Recorded cleaning operations", zap.Int("count", len(operations)))
	return nil
}

// RecordRun stores the run-level statistics.
func (s *AuditSink) RecordRun(ctx context.Context, runID string, stats *model.RunStatistics) error {
	insertCtx, cancel := context.WithTimeout(ctx, s.cfg.StatementTimeout)
	defer cancel()

	_, err := s.db.ExecContext(insertCtx, `
		INSERT INTO public.ingress_runs (run_id, initial_rows, junk_rows, final_rows)
		VALUES ($1, $2, $3, $4)
	`, runID, stats.InitialRowCount, stats.JunkRowCount, stats.FinalRowCount())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *AuditSink) Close() error {
	return s.db.Close()
}
