package transform

import (
	"strconv"

	"pixmill/internal/pix"
)

// ppmSlow produces output byte-identical to ppm, but rebuilds the whole
// string on every append. Kept as a demonstration of quadratic string
// growth; do not "fix" it.
type ppmSlow struct{}

func (ppmSlow) Kind() string { return "ppm-slow" }

func (ppmSlow) Encode(img *pix.Image, _ Options) ([]byte, error) {
	w, h := img.Width(), img.Height()

	out := Magic + "\n"
	out = out + strconv.Itoa(w) + " " + strconv.Itoa(h) + "\n"
	out = out + strconv.Itoa(MaxChannel) + "\n"

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.At(x, y)
			out = out + strconv.Itoa(int(r)) + " "
			out = out + strconv.Itoa(int(g)) + " "
			out = out + strconv.Itoa(int(b)) + " "
		}
		out = out + "\n"
	}
	return []byte(out), nil
}

func init() { Register("ppm-slow", func() Encoder { return ppmSlow{} }) }
