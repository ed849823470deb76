package transform

import (
	"strconv"
	"strings"

	"pixmill/internal/pix"
)

// ppm is the baseline passthrough encoder. One builder, grown once,
// reused across the whole pixel loop.
type ppm struct{}

func (ppm) Kind() string { return "ppm" }

func (ppm) Encode(img *pix.Image, _ Options) ([]byte, error) {
	w, h := img.Width(), img.Height()

	var b strings.Builder
	// Worst case per pixel: three 3-digit values, each with a trailing
	// space ("255 255 255 " is 12 bytes), plus one newline per row.
	b.Grow(len(Magic) + 24 + w*h*12 + h)
	writeHeader(&b, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl := img.At(x, y)
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(g)))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(bl)))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func init() { Register("ppm", func() Encoder { return ppm{} }) }
