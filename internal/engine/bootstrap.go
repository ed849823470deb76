package engine

import (
	"fmt"

	"pixmill/internal/config"
	"pixmill/internal/logging"
	"pixmill/internal/pix"
	"pixmill/internal/telemetry"
)

// Bootstrap builds the engine for one session: telemetry cache per the
// configured policy, the decoded input image, and the optional metrics
// listener.
func Bootstrap(cfg config.Config, imagePath string) (*Engine, error) {
	cache, err := telemetry.New(cfg.Telemetry.Policy, cfg.Telemetry.Capacity)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	img, err := pix.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	if cfg.Metrics.Port > 0 {
		telemetry.Expose(cfg.Metrics.Port)
	}

	meta := img.Meta()
	logging.L().Info("image loaded",
		"path", imagePath,
		"format", meta.Format,
		"width", meta.Width,
		"height", meta.Height,
		"telemetry_policy", cfg.Telemetry.Policy)

	return New(cfg, cache, img), nil
}
