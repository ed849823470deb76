package transform

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"pixmill/internal/pix"
)

var (
	defaultWeights   = Weights{Red: 0.3, Green: 0.59, Blue: 1.11}
	correctedWeights = Weights{Red: 0.3, Green: 0.59, Blue: 0.11}
)

func white(w, h int) *pix.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return pix.New(img, "png")
}

func TestGreyscale_DefaultWeightsOverflowOnWhite(t *testing.T) {
	enc, err := New("greyscale")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = enc.Encode(white(1, 1), Options{Weights: defaultWeights})
	if err == nil {
		t.Fatal("expected overflow on a pure white pixel")
	}
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("want *OverflowError, got %T: %v", err, err)
	}
	if oe.Sum <= MaxChannel {
		t.Fatalf("overflow sum %.2f not above %d", oe.Sum, MaxChannel)
	}
}

func TestGreyscale_CorrectedWeightsSaturateAt255(t *testing.T) {
	enc, _ := New("greyscale")
	got, err := enc.Encode(white(1, 1), Options{Weights: correctedWeights})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "P3\n1 1\n255\n255 255 255 \n"
	if string(got) != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestGreyscale_HeaderMatchesPPMFormat(t *testing.T) {
	img := white(3, 2)
	grey, _ := New("greyscale")
	plain, _ := New("ppm")

	g, err := grey.Encode(img, Options{Weights: correctedWeights})
	if err != nil {
		t.Fatalf("greyscale: %v", err)
	}
	p, err := plain.Encode(img, Options{})
	if err != nil {
		t.Fatalf("ppm: %v", err)
	}

	gHead := strings.SplitN(string(g), "\n", 4)[:3]
	pHead := strings.SplitN(string(p), "\n", 4)[:3]
	for i := range gHead {
		if gHead[i] != pHead[i] {
			t.Fatalf("header line %d differs: %q vs %q", i, gHead[i], pHead[i])
		}
	}
}

func TestGreyscale_OutputIsNeutral(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	enc, _ := New("greyscale")
	got, err := enc.Encode(pix.New(img, "png"), Options{Weights: correctedWeights})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// 0.3*100 + 0.59*100 + 0.11*100 truncates to 99 or 100 depending on
	// float rounding; all three channels must agree either way.
	lines := strings.Split(string(got), "\n")
	fields := strings.Fields(lines[3])
	if len(fields) != 3 || fields[0] != fields[1] || fields[1] != fields[2] {
		t.Fatalf("pixel not neutral grey: %q", lines[3])
	}
}
