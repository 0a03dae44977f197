package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/logging"
	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAutoplayMs  = 3000
	DefaultChartWidth  = 60
	DefaultChartHeight = 12
	DefaultLang        = "zh"
	DefaultLogLevel    = "info"
)

type Config struct {
	CellType    string      `yaml:"cell_type"`
	Composition string      `yaml:"composition"`
	Phase       string      `yaml:"phase"`
	AutoplayMs  int         `yaml:"autoplay_ms"`
	Autostart   bool        `yaml:"autostart"`
	Lang        string      `yaml:"lang"`
	LogLevel    string      `yaml:"log_level"`
	Chart       ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Composition string `yaml:"composition"`
	Color       bool   `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		CellType:    string(mitosis.Animal),
		Composition: string(mitosis.Diploid4),
		Phase:       string(mitosis.Prophase),
		AutoplayMs:  DefaultAutoplayMs,
		Lang:        DefaultLang,
		LogLevel:    DefaultLogLevel,
		Chart: ChartConfig{
			Width:       DefaultChartWidth,
			Height:      DefaultChartHeight,
			Composition: string(mitosis.Diploid4),
			Color:       true,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerations, the cell type / composition pairing and
// numeric bounds.
func (c *Config) Validate() error {
	if _, err := c.InitialState(); err != nil {
		return err
	}
	if _, err := mitosis.ParseComposition(c.Chart.Composition); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := content.ParseLang(c.Lang); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.AutoplayMs <= 0 {
		return fmt.Errorf("autoplay_ms must be positive, got %d: %w", c.AutoplayMs, mitosis.ErrInvalidInput)
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("chart size %dx%d: %w", c.Chart.Width, c.Chart.Height, mitosis.ErrInvalidInput)
	}
	return nil
}

// InitialState converts the selection fields into a navigator state.
func (c *Config) InitialState() (navigator.State, error) {
	cell, err := mitosis.ParseCellType(c.CellType)
	if err != nil {
		return navigator.State{}, err
	}
	comp, err := mitosis.ParseComposition(c.Composition)
	if err != nil {
		return navigator.State{}, err
	}
	phase, err := mitosis.ParsePhase(c.Phase)
	if err != nil {
		return navigator.State{}, err
	}
	s := navigator.State{CellType: cell, Composition: comp, Phase: phase}
	if err := s.Validate(); err != nil {
		return navigator.State{}, err
	}
	return s, nil
}

func (c *Config) AutoplayPeriod() time.Duration {
	return time.Duration(c.AutoplayMs) * time.Millisecond
}

func (c *Config) Language() content.Lang {
	l, err := content.ParseLang(c.Lang)
	if err != nil {
		return content.Zh
	}
	return l
}

func (c *Config) ChartComposition() mitosis.Composition {
	comp, err := mitosis.ParseComposition(c.Chart.Composition)
	if err != nil {
		return mitosis.Diploid4
	}
	return comp
}
