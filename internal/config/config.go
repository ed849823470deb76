// Package config loads the tool configuration: an optional YAML file
// merged with PIXMILL__ environment variables. Every tunable has a
// default, so running with no file at all works.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"pixmill/internal/telemetry"
)

// DefaultPath is where Load looks when no -config flag is given.
const DefaultPath = "pixmill.yml"

type OutputCfg struct {
	Path string `koanf:"path" yaml:"path"`
}

type ResizeCfg struct {
	Width     int     `koanf:"width" yaml:"width"`
	Height    int     `koanf:"height" yaml:"height"`
	BlurSigma float64 `koanf:"blur_sigma" yaml:"blur_sigma"`
}

// GreyscaleCfg holds the luminance weights. The default blue weight
// (1.11) makes bright pixels overflow on purpose; 0.11 is the corrected
// value.
type GreyscaleCfg struct {
	RedWeight   float64 `koanf:"red_weight" yaml:"red_weight"`
	GreenWeight float64 `koanf:"green_weight" yaml:"green_weight"`
	BlueWeight  float64 `koanf:"blue_weight" yaml:"blue_weight"`
}

type TelemetryCfg struct {
	Policy   string `koanf:"policy" yaml:"policy"`     // unbounded|bounded
	Capacity int    `koanf:"capacity" yaml:"capacity"` // bounded only
}

type MetricsCfg struct {
	Port int `koanf:"port" yaml:"port"` // 0 disables the listener
}

type BulkCfg struct {
	Runs int `koanf:"runs" yaml:"runs"`
}

type LogCfg struct {
	Level string `koanf:"level" yaml:"level"`
	JSON  bool   `koanf:"json" yaml:"json"`
}

type Config struct {
	Output    OutputCfg    `koanf:"output" yaml:"output"`
	Resize    ResizeCfg    `koanf:"resize" yaml:"resize"`
	Greyscale GreyscaleCfg `koanf:"greyscale" yaml:"greyscale"`
	Telemetry TelemetryCfg `koanf:"telemetry" yaml:"telemetry"`
	Metrics   MetricsCfg   `koanf:"metrics" yaml:"metrics"`
	Bulk      BulkCfg      `koanf:"bulk" yaml:"bulk"`
	Log       LogCfg       `koanf:"log" yaml:"log"`
}

// Load merges YAML (if present) with env vars (prefix `PIXMILL__`,
// delimiter `__`), applies defaults and validates.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	_ = k.Load(env.Provider("PIXMILL__", "__", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PIXMILL__")), "__", ".")
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.Output.Path == "" {
		c.Output.Path = "out.ppm"
	}
	if c.Resize.Width == 0 {
		c.Resize.Width = 250
	}
	if c.Resize.Height == 0 {
		c.Resize.Height = 250
	}
	if c.Greyscale.RedWeight == 0 {
		c.Greyscale.RedWeight = 0.3
	}
	if c.Greyscale.GreenWeight == 0 {
		c.Greyscale.GreenWeight = 0.59
	}
	if c.Greyscale.BlueWeight == 0 {
		c.Greyscale.BlueWeight = 1.11
	}
	if c.Telemetry.Policy == "" {
		c.Telemetry.Policy = telemetry.PolicyUnbounded
	}
	if c.Telemetry.Capacity == 0 {
		c.Telemetry.Capacity = 10
	}
	if c.Bulk.Runs == 0 {
		c.Bulk.Runs = 256
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func validate(c Config) error {
	if c.Telemetry.Policy != telemetry.PolicyUnbounded && c.Telemetry.Policy != telemetry.PolicyBounded {
		return fmt.Errorf("config: telemetry policy %q not supported (want %q or %q)",
			c.Telemetry.Policy, telemetry.PolicyUnbounded, telemetry.PolicyBounded)
	}
	if c.Telemetry.Capacity < 1 {
		return fmt.Errorf("config: telemetry capacity must be positive, got %d", c.Telemetry.Capacity)
	}
	if c.Resize.Width < 1 || c.Resize.Height < 1 {
		return fmt.Errorf("config: resize target %dx%d not usable", c.Resize.Width, c.Resize.Height)
	}
	if c.Bulk.Runs < 1 {
		return fmt.Errorf("config: bulk runs must be positive, got %d", c.Bulk.Runs)
	}
	if c.Greyscale.RedWeight < 0 || c.Greyscale.GreenWeight < 0 || c.Greyscale.BlueWeight < 0 {
		return errors.New("config: greyscale weights must not be negative")
	}
	return nil
}

const defaultHeader = `# pixmill configuration.
#
# greyscale.blue_weight defaults to 1.11, which overflows on bright
# pixels; set it to 0.11 so the three weights sum to 1.0.
#
# telemetry.policy "unbounded" retains every record for the process
# lifetime. Switch to "bounded" to cap retention at telemetry.capacity.
`

// WriteDefault writes a commented config file with every default filled
// in, so the two documented defects can be flipped without code edits.
func WriteDefault(path string) error {
	var cfg Config
	applyDefaults(&cfg)
	raw, err := yamlv3.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(defaultHeader), raw...), 0o644)
}
