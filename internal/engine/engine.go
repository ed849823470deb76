// Package engine runs the conversion commands: it owns the loaded
// image, the telemetry cache, and the shared per-run steps around the
// encoders.
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pixmill/internal/config"
	"pixmill/internal/logging"
	"pixmill/internal/pix"
	"pixmill/internal/telemetry"
	"pixmill/internal/transform"
)

// KindBulk repeats the ppm conversion; it is a command, not an encoder.
const KindBulk = "ppm-bulk"

// Kinds lists the conversion commands in banner order.
func Kinds() []string {
	return []string{"ppm", "ppm-slow", KindBulk, "greyscale"}
}

type Engine struct {
	cfg   config.Config
	cache telemetry.Cache
	img   *pix.Image
}

// New wires an engine from parts. Bootstrap is the usual entrypoint;
// tests inject their own cache and image here.
func New(cfg config.Config, cache telemetry.Cache, img *pix.Image) *Engine {
	return &Engine{cfg: cfg, cache: cache, img: img}
}

// Cache exposes the telemetry cache for the history command.
func (e *Engine) Cache() telemetry.Cache { return e.cache }

// Knows reports whether name is a conversion command.
func (e *Engine) Knows(name string) bool {
	return name == KindBulk || transform.Registered(name)
}

// Apply runs the named conversion against the loaded image. ppm-bulk
// repeats the full ppm run, telemetry and file write included, once per
// configured repetition.
func (e *Engine) Apply(name string) error {
	if name == KindBulk {
		for i := 0; i < e.cfg.Bulk.Runs; i++ {
			if err := e.run("ppm"); err != nil {
				return fmt.Errorf("bulk run %d of %d: %w", i+1, e.cfg.Bulk.Runs, err)
			}
		}
		return nil
	}
	return e.run(name)
}

func (e *Engine) run(kind string) error {
	enc, err := transform.New(kind)
	if err != nil {
		return err
	}

	// Each run fully replaces the previous output.
	if err := os.Remove(e.cfg.Output.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale output: %w", err)
	}

	// Telemetry reflects the image as it stood before this run's
	// resize. Capture order is a contract, not a convenience.
	e.cache.Add(e.img.Meta(), kind)

	e.img.Resize(e.cfg.Resize.Width, e.cfg.Resize.Height)
	if e.cfg.Resize.BlurSigma > 0 {
		e.img.Blur(e.cfg.Resize.BlurSigma)
	}

	text, err := enc.Encode(e.img, transform.Options{
		Weights: transform.Weights{
			Red:   e.cfg.Greyscale.RedWeight,
			Green: e.cfg.Greyscale.GreenWeight,
			Blue:  e.cfg.Greyscale.BlueWeight,
		},
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(e.cfg.Output.Path, text, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", e.cfg.Output.Path, err)
	}

	logging.L().Debug("conversion complete",
		"kind", kind, "output", e.cfg.Output.Path, "bytes", len(text))
	return nil
}
