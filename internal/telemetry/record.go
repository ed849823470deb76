package telemetry

import (
	"time"

	"github.com/google/uuid"

	"pixmill/internal/pix"
)

// Record describes one completed conversion. Records are immutable once
// created; the cache only ever inserts or evicts whole records.
type Record struct {
	Timestamp time.Time
	ID        string
	Kind      string
	Meta      pix.Meta
}

func newRecord(meta pix.Meta, kind string) Record {
	return Record{
		Timestamp: time.Now(),
		ID:        uuid.New().String(),
		Kind:      kind,
		Meta:      meta,
	}
}
