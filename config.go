package sitegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the sitegen tools. Every field has a
// default, so an absent or empty sitegen.yaml is valid.
type Config struct {
	Root          string `yaml:"root"`           // project root all paths resolve against
	PortfolioHTML string `yaml:"portfolio_html"` // page read by `images`, written by `generate`
	EntriesDir    string `yaml:"entries_dir"`    // directory of per-project entry folders
	EntryFile     string `yaml:"entry_file"`     // descriptor file name inside each entry folder

	RatioWidth     int     `yaml:"ratio_width"`     // target aspect ratio numerator
	RatioHeight    int     `yaml:"ratio_height"`    // target aspect ratio denominator
	RatioTolerance float64 `yaml:"ratio_tolerance"` // padding no-op tolerance (fraction)

	Addr string `yaml:"addr"` // preview server listen address
}

func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.PortfolioHTML == "" {
		c.PortfolioHTML = "portfolio.html"
	}
	if c.EntriesDir == "" {
		c.EntriesDir = "portfolio"
	}
	if c.EntryFile == "" {
		c.EntryFile = "content.yaml"
	}
	if c.RatioWidth == 0 {
		c.RatioWidth = 16
	}
	if c.RatioHeight == 0 {
		c.RatioHeight = 9
	}
	if c.RatioTolerance == 0 {
		c.RatioTolerance = 0.01
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// LoadConfig reads the config file at path and applies SITEGEN_*
// environment overrides. A missing file is not an error: defaults plus the
// environment apply.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SITEGEN_ROOT"); v != "" {
		c.Root = v
	}
	if v := os.Getenv("SITEGEN_PORTFOLIO_HTML"); v != "" {
		c.PortfolioHTML = v
	}
	if v := os.Getenv("SITEGEN_ENTRIES_DIR"); v != "" {
		c.EntriesDir = v
	}
	if v := os.Getenv("SITEGEN_ENTRY_FILE"); v != "" {
		c.EntryFile = v
	}
	if v := os.Getenv("SITEGEN_RATIO_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SITEGEN_RATIO_WIDTH %q: %w", v, err)
		}
		c.RatioWidth = n
	}
	if v := os.Getenv("SITEGEN_RATIO_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SITEGEN_RATIO_HEIGHT %q: %w", v, err)
		}
		c.RatioHeight = n
	}
	if v := os.Getenv("SITEGEN_RATIO_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SITEGEN_RATIO_TOLERANCE %q: %w", v, err)
		}
		c.RatioTolerance = f
	}
	if v := os.Getenv("SITEGEN_ADDR"); v != "" {
		c.Addr = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.RatioWidth < 0 || c.RatioHeight < 0 {
		return fmt.Errorf("ratio %d:%d must be positive", c.RatioWidth, c.RatioHeight)
	}
	if c.RatioTolerance < 0 {
		return fmt.Errorf("ratio_tolerance %g must not be negative", c.RatioTolerance)
	}
	return nil
}

// HTMLPath returns the portfolio page path under the project root.
func (c Config) HTMLPath() string {
	return filepath.Join(c.Root, c.PortfolioHTML)
}

// EntriesPath returns the entries directory under the project root.
func (c Config) EntriesPath() string {
	return filepath.Join(c.Root, c.EntriesDir)
}
