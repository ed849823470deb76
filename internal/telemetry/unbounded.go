package telemetry

import "pixmill/internal/pix"

// unbounded retains every record forever. Left in deliberately as the
// default: it demonstrates why the bounded policy exists.
type unbounded struct {
	records []Record
}

func (c *unbounded) Add(meta pix.Meta, kind string) {
	c.records = append(c.records, newRecord(meta, kind))
	recordsTotal.WithLabelValues(kind).Inc()
}

func (c *unbounded) Count() int { return len(c.records) }

func (c *unbounded) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
