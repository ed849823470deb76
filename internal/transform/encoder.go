package transform

import (
	"fmt"
	"strconv"
	"strings"

	"pixmill/internal/pix"
)

const (
	// Magic is the plain-text pixel-map magic token.
	Magic = "P3"
	// MaxChannel is the largest value a channel sample may carry.
	MaxChannel = 255
)

// Weights are the channel coefficients for greyscale luminance.
type Weights struct {
	Red   float64
	Green float64
	Blue  float64
}

// Options carries the tunables an encoder may honor.
type Options struct {
	Weights Weights
}

// Encoder turns a pixel buffer into the text of one output file.
type Encoder interface {
	Kind() string
	Encode(img *pix.Image, opts Options) ([]byte, error)
}

type factory = func() Encoder

var reg = map[string]factory{}

// Register is called from each encoder's init.
func Register(name string, f factory) { reg[name] = f }

// New returns an encoder by name.
func New(name string) (Encoder, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}

// Registered reports whether name resolves to an encoder.
func Registered(name string) bool {
	_, ok := reg[name]
	return ok
}

// writeHeader emits the three header lines: magic, dimensions, max
// channel value.
func writeHeader(b *strings.Builder, w, h int) {
	b.WriteString(Magic)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(w))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(h))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(MaxChannel))
	b.WriteByte('\n')
}
