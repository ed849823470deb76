// Package telemetry retains metadata about past conversions and exposes
// it in insertion order. Two retention policies exist: unbounded keeps
// every record for the life of the process (the default, and a
// documented memory-growth hazard), bounded evicts the oldest record
// once a fixed capacity is reached.
package telemetry

import (
	"fmt"

	"pixmill/internal/pix"
)

const (
	PolicyUnbounded = "unbounded"
	PolicyBounded   = "bounded"
)

// Cache is the retention policy interface. Implementations are not
// safe for concurrent use; the tool runs one command at a time.
type Cache interface {
	// Add records one conversion. meta must be captured before the
	// conversion mutates the image.
	Add(meta pix.Meta, kind string)
	// Count reports the number of records currently retained.
	Count() int
	// Records returns the retained records oldest first. The slice is
	// a snapshot; later Adds do not affect it.
	Records() []Record
}

// New selects a policy by name. The policy is fixed for the process
// lifetime; there is no runtime switching.
func New(policy string, capacity int) (Cache, error) {
	switch policy {
	case PolicyUnbounded:
		return &unbounded{}, nil
	case PolicyBounded:
		if capacity <= 0 {
			return nil, fmt.Errorf("telemetry: bounded policy needs a positive capacity, got %d", capacity)
		}
		return &bounded{capacity: capacity}, nil
	default:
		return nil, fmt.Errorf("telemetry: unknown policy %q", policy)
	}
}
