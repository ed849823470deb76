package transform

import (
	"fmt"
	"strconv"
	"strings"

	"pixmill/internal/pix"
)

// OverflowError reports a weighted luminance sum that does not fit in a
// single channel byte. It aborts the greyscale run; the command loop
// reports it and carries on.
type OverflowError struct {
	X, Y int
	Sum  float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("greyscale: weighted luminance %.2f at pixel (%d,%d) exceeds %d; lower the blue weight",
		e.Sum, e.X, e.Y, MaxChannel)
}

// greyscale writes R=G=B=luminance per pixel. The weights come from
// configuration; the default blue weight is high enough to overflow on
// bright pixels, which is the documented defect this encoder exists to
// demonstrate.
type greyscale struct{}

func (greyscale) Kind() string { return "greyscale" }

func (greyscale) Encode(img *pix.Image, opts Options) ([]byte, error) {
	w, h := img.Width(), img.Height()
	wt := opts.Weights

	var b strings.Builder
	b.Grow(len(Magic) + 24 + w*h*12 + h)
	writeHeader(&b, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl := img.At(x, y)
			sum := wt.Red*float64(r) + wt.Green*float64(g) + wt.Blue*float64(bl)
			luma := int(sum)
			if luma > MaxChannel {
				return nil, &OverflowError{X: x, Y: y, Sum: sum}
			}
			v := strconv.Itoa(luma)
			b.WriteString(v)
			b.WriteByte(' ')
			b.WriteString(v)
			b.WriteByte(' ')
			b.WriteString(v)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func init() { Register("greyscale", func() Encoder { return greyscale{} }) }
