// Package pix owns the decoded pixel buffer the conversion commands
// operate on. An Image is deliberately mutable: Resize replaces the
// buffer in place, so callers that need the pre-resize dimensions must
// snapshot Meta first.
package pix

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Meta is a point-in-time description of an Image. It is a plain value;
// copying it is the deep snapshot the telemetry records rely on.
type Meta struct {
	Width  int
	Height int
	Format string
}

// Image wraps one decoded picture in a flat NRGBA buffer.
type Image struct {
	buf  *image.NRGBA
	meta Meta
}

// Load decodes the file at path. Format support is whatever the
// registered decoders provide (gif, jpeg, png, webp).
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pix: open: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pix: decode %s: %w", path, err)
	}
	return New(src, format), nil
}

// New flattens src into an Image. Exposed for callers that already hold
// a decoded picture (and for tests).
func New(src image.Image, format string) *Image {
	buf := imaging.Clone(src)
	b := buf.Bounds()
	return &Image{
		buf:  buf,
		meta: Meta{Width: b.Dx(), Height: b.Dy(), Format: format},
	}
}

// Meta returns a snapshot of the image as it stands now.
func (p *Image) Meta() Meta { return p.meta }

func (p *Image) Width() int  { return p.meta.Width }
func (p *Image) Height() int { return p.meta.Height }

// Resize scales the buffer to exactly w by h samples, ignoring the
// original aspect ratio. The previous dimensions are discarded.
func (p *Image) Resize(w, h int) {
	scaled := resize.Resize(uint(w), uint(h), p.buf, resize.NearestNeighbor)
	p.buf = imaging.Clone(scaled)
	p.meta.Width = w
	p.meta.Height = h
}

// Blur applies a Gaussian pre-filter. Sigma at or below zero is a no-op.
func (p *Image) Blur(sigma float64) {
	if sigma <= 0 {
		return
	}
	g := gift.New(gift.GaussianBlur(float32(sigma)))
	dst := image.NewNRGBA(g.Bounds(p.buf.Bounds()))
	g.Draw(dst, p.buf)
	p.buf = dst
}

// At returns the 8-bit channel values of the pixel at (x, y).
func (p *Image) At(x, y int) (r, g, b uint8) {
	i := p.buf.PixOffset(x, y)
	s := p.buf.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}
