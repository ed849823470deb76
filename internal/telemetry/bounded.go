package telemetry

import "pixmill/internal/pix"

// bounded keeps at most capacity records. When full, the single oldest
// record is evicted before the new one is inserted, so the retained set
// is always the most recent Adds in insertion order.
type bounded struct {
	capacity int
	records  []Record
}

func (c *bounded) Add(meta pix.Meta, kind string) {
	if len(c.records) == c.capacity {
		copy(c.records, c.records[1:])
		c.records = c.records[:c.capacity-1]
		evictionsTotal.Inc()
	}
	c.records = append(c.records, newRecord(meta, kind))
	recordsTotal.WithLabelValues(kind).Inc()
}

func (c *bounded) Count() int { return len(c.records) }

func (c *bounded) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
