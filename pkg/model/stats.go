// pkg/model/stats.go
package model

// RunStatistics summarizes one processing run. It is computed once, after
// junk removal, over the final dataset, and is read-only from then on.
type RunStatistics struct {
	InitialRowCount int
	JunkRowCount    int
	NullCounts      map[string]int
	NullPercentages map[string]float64
	OutputColumns   []string
}

// NewRunStatistics initializes statistics for a run.
func NewRunStatistics(initialRows int) *RunStatistics {
	return &RunStatistics{
		InitialRowCount: initialRows,
		NullCounts:      make(map[string]int),
		NullPercentages: make(map[string]float64),
		OutputColumns:   OutputColumns,
	}
}

// FinalRowCount returns the number of rows that survived the junk filter.
func (s *RunStatistics) FinalRowCount() int {
	return s.InitialRowCount - s.JunkRowCount
}

// CountNulls tallies sentinel values per output column over the final
// dataset. Percentages are 0-100.
func (s *RunStatistics) CountNulls(ds *Dataset) {
	for _, col := range OutputColumns {
		count := 0
		for _, row := range ds.Rows {
			if row.IsNull(col) {
				count++
			}
		}
		s.NullCounts[col] = count
		if ds.Len() > 0 {
			s.NullPercentages[col] = float64(count) / float64(ds.Len()) * 100
		} else {
			s.NullPercentages[col] = 0
		}
	}
}
