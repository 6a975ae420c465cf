// pkg/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/cleaner"
	"github.com/emailops/email-ingress/pkg/converter"
	"github.com/emailops/email-ingress/pkg/model"
)

// textColumns are the columns scrubbed by the text cleaner. SenderDomain is
// excluded: it is a derived, address-safe substring.
var textColumns = []string{model.ColSender, model.ColRecipient, model.ColSubject, model.ColBody}

// Processor runs the row-level normalization and junk-detection pipeline
// over a whole dataset. It holds no per-run state; statistics come back
// with the result rather than accumulating on the processor.
type Processor struct {
	logger *zap.Logger
}

// NewProcessor creates a new Processor instance.
func NewProcessor(logger *zap.Logger) (*Processor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Processor{logger: logger}, nil
}

// Result carries everything one run produces: the cleaned dataset projected
// to the fixed output columns, the run statistics, the per-field cleaning
// audit trail, and degradation tallies by category.
type Result struct {
	Data         *model.Dataset
	Stats        *model.RunStatistics
	Operations   []model.CleaningOperation
	Degradations map[DegradationCategory]int
}

// Process cleans and standardizes a loaded dataset. Stages run in strict
// order: column mapping and fill, address extraction and domain derivation,
// date normalization, text cleaning, body truncation, junk removal,
// statistics, projection. Malformed rows never abort the run; per-field
// failures degrade to the sentinel.
func (p *Processor) Process(run Run, ds *model.Dataset) (*Result, error) {
	if ds == nil {
		return nil, errors.New("dataset cannot be nil")
	}

	res := &Result{
		Stats:        model.NewRunStatistics(ds.Len()),
		Degradations: make(map[DegradationCategory]int),
	}

	p.logger.Info("Processing dataset",
		zap.String("run", run.ID),
		zap.Int("rows", ds.Len()),
		zap.Strings("sourceColumns", ds.Columns))

	mapped := p.mapColumns(ds)
	for _, row := range mapped.Rows {
		p.extractAddresses(run, row, res)
		p.normalizeDate(run, row, res)
		p.cleanText(run, row, res)
		p.truncateBody(run, row, res)
	}

	final := p.removeJunk(run, mapped, res)

	res.Stats.JunkRowCount = mapped.Len() - final.Len()
	res.Stats.CountNulls(final)
	res.Data = p.project(final)

	p.logger.Info("Processing complete",
		zap.String("run", run.ID),
		zap.Int("initialRows", res.Stats.InitialRowCount),
		zap.Int("junkRows", res.Stats.JunkRowCount),
		zap.Int("finalRows", res.Data.Len()),
		zap.Int("cleaningOperations", len(res.Operations)))

	return res, nil
}

// mapColumns renames source headers to standardized names using the fixed
// mapping (case-insensitive) and fills every absent target column with the
// sentinel.
func (p *Processor) mapColumns(ds *model.Dataset) *model.Dataset {
	targets := make(map[string]string, len(ds.Columns))
	columns := make([]string, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		name := col
		if mapped, ok := model.ColumnMapping[strings.ToLower(strings.TrimSpace(col))]; ok {
			name = mapped
		}
		targets[col] = name
		columns = append(columns, name)
	}

	// Targets never produced by the mapping are created sentinel-filled.
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	var missing []string
	for _, col := range model.ColumnMapping {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	columns = append(columns, missing...)

	out := model.NewDataset(columns)
	for _, row := range ds.Rows {
		mapped := make(model.Record, len(row)+len(missing))
		for col, val := range row {
			name := col
			if t, ok := targets[col]; ok {
				name = t
			}
			mapped[name] = val
		}
		for _, col := range missing {
			mapped[col] = model.Null
		}
		out.Append(mapped)
	}

	if len(missing) > 0 {
		p.logger.Warn("Source is missing mapped columns, filled with sentinel",
			zap.Strings("columns", missing))
	}
	return out
}

// extractAddresses normalizes Sender and Recipient to bare addresses and
// derives SenderDomain from the normalized Sender.
func (p *Processor) extractAddresses(run Run, row model.Record, res *Result) {
	for _, col := range []string{model.ColSender, model.ColRecipient} {
		raw := row.Get(col)
		addr := converter.ExtractAddress(raw)
		row[col] = addr
		if addr == model.Null && raw != model.Null {
			res.Degradations[DegradationFieldExtraction]++
			res.Operations = append(res.Operations, model.CleaningOperation{
				RunID:             run.ID,
				ColumnName:        col,
				OriginalValue:     raw,
				NewValue:          model.Null,
				CleaningOperation: model.OpAddressExtraction,
				CleaningReason:    model.ReasonUnparseableAddress,
			})
		}
	}
	row[model.ColSenderDomain] = converter.ExtractDomain(row.Get(model.ColSender))
}

// normalizeDate rewrites the Date column into the canonical form.
func (p *Processor) normalizeDate(run Run, row model.Record, res *Result) {
	raw := row.Get(model.ColDate)
	normalized := converter.NormalizeDate(raw)
	row[model.ColDate] = normalized
	if normalized == model.Null && raw != model.Null {
		res.Degradations[DegradationDateParse]++
		res.Operations = append(res.Operations, model.CleaningOperation{
			RunID:             run.ID,
			ColumnName:        model.ColDate,
			OriginalValue:     raw,
			NewValue:          model.Null,
			CleaningOperation: model.OpDateNormalization,
			CleaningReason:    model.ReasonUnparseableDate,
		})
	}
}

// cleanText scrubs the text columns. SenderDomain is left alone.
func (p *Processor) cleanText(run Run, row model.Record, res *Result) {
	for _, col := range textColumns {
		raw := row.Get(col)
		cleaned := cleaner.CleanText(raw)
		if cleaned != raw {
			res.Operations = append(res.Operations, model.CleaningOperation{
				RunID:             run.ID,
				ColumnName:        col,
				OriginalValue:     raw,
				NewValue:          cleaned,
				CleaningOperation: model.OpTextCleaning,
				CleaningReason:    model.ReasonNonPortableChars,
			})
		}
		row[col] = cleaned
	}
}

// truncateBody caps the cleaned body length.
func (p *Processor) truncateBody(run Run, row model.Record, res *Result) {
	body := row.Get(model.ColBody)
	truncated := cleaner.TruncateBody(body)
	if truncated != body {
		res.Operations = append(res.Operations, model.CleaningOperation{
			RunID:             run.ID,
			ColumnName:        model.ColBody,
			OriginalValue:     body,
			NewValue:          truncated,
			CleaningOperation: model.OpBodyTruncation,
			CleaningReason:    model.ReasonBodyTooLong,
		})
	}
	row[model.ColBody] = truncated
}

// removeJunk filters out rows the junk classifier flags, preserving the
// order of the survivors.
func (p *Processor) removeJunk(run Run, ds *model.Dataset, res *Result) *model.Dataset {
	out := model.NewDataset(ds.Columns)
	for i, row := range ds.Rows {
		reason := cleaner.JunkReason(row)
		if reason == "" {
			out.Append(row)
			continue
		}
		res.Degradations[DegradationJunkRow]++
		res.Operations = append(res.Operations, model.CleaningOperation{
			RunID:             run.ID,
			RowIndex:          i,
			OriginalValue:     row.Get(model.ColSubject),
			CleaningOperation: model.OpJunkRemoval,
			CleaningReason:    reason,
		})
	}
	return out
}

// project restricts every record to exactly the six output columns, in the
// fixed order.
func (p *Processor) project(ds *model.Dataset) *model.Dataset {
	out := model.NewDataset(model.OutputColumns)
	for _, row := range ds.Rows {
		projected := make(model.Record, len(model.OutputColumns))
		for _, col := range model.OutputColumns {
			projected[col] = row.Get(col)
		}
		out.Append(projected)
	}
	return out
}
