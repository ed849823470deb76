package telemetry

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"pixmill/internal/pix"
)

func meta(w, h int) pix.Meta {
	return pix.Meta{Width: w, Height: h, Format: "png"}
}

func TestUnbounded_RetainsEverything(t *testing.T) {
	c, err := New(PolicyUnbounded, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 25
	for i := 0; i < n; i++ {
		c.Add(meta(i, i), fmt.Sprintf("k%02d", i))
	}
	if c.Count() != n {
		t.Fatalf("count = %d, want %d", c.Count(), n)
	}
	recs := c.Records()
	for i, r := range recs {
		if want := fmt.Sprintf("k%02d", i); r.Kind != want {
			t.Fatalf("record %d kind = %q, want %q", i, r.Kind, want)
		}
	}
}

func TestBounded_EvictsStrictlyOldestFirst(t *testing.T) {
	c, err := New(PolicyBounded, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 15; i++ {
		c.Add(meta(i, i), fmt.Sprintf("k%02d", i))
		if c.Count() > 10 {
			t.Fatalf("capacity exceeded at add %d: count %d", i, c.Count())
		}
	}
	if c.Count() != 10 {
		t.Fatalf("count = %d, want 10", c.Count())
	}
	recs := c.Records()
	for i, r := range recs {
		if want := fmt.Sprintf("k%02d", i+5); r.Kind != want {
			t.Fatalf("record %d kind = %q, want %q", i, r.Kind, want)
		}
	}
}

func TestRecords_IsASnapshot(t *testing.T) {
	c, _ := New(PolicyUnbounded, 0)
	c.Add(meta(1, 1), "ppm")
	snap := c.Records()
	c.Add(meta(2, 2), "ppm")
	if len(snap) != 1 {
		t.Fatalf("snapshot grew with the cache: %d records", len(snap))
	}
	snap[0].Kind = "mutated"
	if c.Records()[0].Kind != "ppm" {
		t.Fatal("mutating the snapshot reached the cache")
	}
}

func TestRecord_FieldsPopulated(t *testing.T) {
	c, _ := New(PolicyUnbounded, 0)
	c.Add(meta(640, 480), "greyscale")
	r := c.Records()[0]
	if r.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", r.ID, err)
	}
	if r.Kind != "greyscale" || r.Meta.Width != 640 || r.Meta.Height != 480 {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New("ring", 10); err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if _, err := New(PolicyBounded, 0); err == nil {
		t.Fatal("expected error for non-positive capacity")
	}
}
