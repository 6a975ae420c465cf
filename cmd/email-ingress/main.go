// cmd/email-ingress/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emailops/email-ingress/pkg/config"
	"github.com/emailops/email-ingress/pkg/loader"
	"github.com/emailops/email-ingress/pkg/model"
	"github.com/emailops/email-ingress/pkg/pipeline"
	"github.com/emailops/email-ingress/pkg/sink"
)

func main() {
	inputFlag := flag.String("input", "", "path to the email data file (CSV or Excel); overrides INGRESS_INPUT")
	dryRun := flag.Bool("dry-run", false, "print the report without writing output files")
	flag.Parse()

	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	} else if flag.NArg() > 0 {
		cfg.InputPath = flag.Arg(0)
	}

	if err := run(cfg, logger, *dryRun); err != nil {
		logger.Error("Run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, dryRun bool) error {
	ctx := context.Background()

	ds, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}

	processor, err := pipeline.NewProcessor(logger)
	if err != nil {
		return err
	}

	r := pipeline.NewRun()
	res, err := processor.Process(r, ds)
	if err != nil {
		return err
	}

	report := pipeline.GenerateReport(r, res)
	fmt.Println(report)

	if dryRun {
		return nil
	}

	writer, err := sink.NewFileWriter(cfg.OutputDir, logger)
	if err != nil {
		return err
	}
	dataPath, err := writer.WriteDataset(r.Label(), res.Data)
	if err != nil {
		return err
	}
	reportPath, err := writer.WriteReport(r.Label(), report)
	if err != nil {
		return err
	}
	fmt.Printf("Processed data saved to: %s\n", dataPath)
	fmt.Printf("Report saved to: %s\n", reportPath)

	if cfg.AuditEnabled {
		audit, err := sink.NewAuditSink(ctx, cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer func() { _ = audit.Close() }()

		if err := audit.RecordOperations(ctx, res.Operations); err != nil {
			return err
		}
		if err := audit.RecordRun(ctx, r.ID, res.Stats); err != nil {
			return err
		}
	}

	return nil
}

// loadDataset reads the input from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*model.Dataset, error) {
	switch cfg.Source {
	case config.SourceSnowflake:
		sf, err := loader.NewSnowflakeLoader(ctx, cfg.Snowflake, logger)
		if err != nil {
			return nil, err
		}
		defer func() { _ = sf.Close() }()
		return sf.Load(ctx, cfg.SnowflakeTable)
	default:
		if cfg.InputPath == "" {
			return nil, fmt.Errorf("no input file given; pass -input or set INGRESS_INPUT")
		}
		fl, err := loader.NewFileLoader(logger)
		if err != nil {
			return nil, err
		}
		return fl.Load(cfg.InputPath)
	}
}

// buildLogger assembles a zap logger from the configured level and format.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
