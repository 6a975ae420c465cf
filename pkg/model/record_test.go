package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordGet(t *testing.T) {
	r := Record{ColSender: "jane@x.com", ColSubject: ""}

	assert.Equal(t, "jane@x.com", r.Get(ColSender))
	assert.Equal(t, "", r.Get(ColSubject))
	assert.Equal(t, Null, r.Get(ColBody))
}

func TestRecordIsNull(t *testing.T) {
	r := Record{ColSender: Null, ColSubject: ""}

	assert.True(t, r.IsNull(ColSender))
	assert.False(t, r.IsNull(ColSubject))
	assert.True(t, r.IsNull(ColBody))
}

func TestRecordClone(t *testing.T) {
	r := Record{ColSender: "jane@x.com"}
	c := r.Clone()
	c[ColSender] = "other@y.com"

	assert.Equal(t, "jane@x.com", r.Get(ColSender))
	assert.Equal(t, "other@y.com", c.Get(ColSender))
}

func TestDatasetHasColumn(t *testing.T) {
	ds := NewDataset([]string{"From", "To"})

	assert.True(t, ds.HasColumn("from"))
	assert.True(t, ds.HasColumn("TO"))
	assert.False(t, ds.HasColumn("Subject"))
}

func TestCountNulls(t *testing.T) {
	ds := NewDataset(OutputColumns)
	ds.Append(Record{
		ColSender: "jane@x.com", ColRecipient: Null, ColSenderDomain: "x.com",
		ColDate: "2024-01-05 00:00:00", ColSubject: "Hello", ColBody: "World",
	})
	ds.Append(Record{
		ColSender: "kim@w.com", ColRecipient: Null, ColSenderDomain: "w.com",
		ColDate: Null, ColSubject: "Status", ColBody: "text",
	})

	s := NewRunStatistics(3)
	s.JunkRowCount = 1
	s.CountNulls(ds)

	assert.Equal(t, 2, s.FinalRowCount())
	assert.Equal(t, 2, s.NullCounts[ColRecipient])
	assert.Equal(t, 1, s.NullCounts[ColDate])
	assert.Equal(t, 0, s.NullCounts[ColSender])
	assert.InDelta(t, 100.0, s.NullPercentages[ColRecipient], 0.001)
	assert.InDelta(t, 50.0, s.NullPercentages[ColDate], 0.001)
}

func TestCountNullsEmptyDataset(t *testing.T) {
	s := NewRunStatistics(0)
	s.CountNulls(NewDataset(OutputColumns))

	for _, col := range OutputColumns {
		assert.Equal(t, 0, s.NullCounts[col])
		assert.Equal(t, 0.0, s.NullPercentages[col])
	}
}
