package config

import (
	"time"

	"github.com/lixenwraith/termgrid/parameter"
)

// Config holds the demo runtime settings loaded from YAML.
type Config struct {
	Width                  int     `yaml:"width"`
	Height                 int     `yaml:"height"`
	LogicPeriodMs          float64 `yaml:"logic_period_ms"`
	RenderPeriodMs         float64 `yaml:"render_period_ms"`
	SkipMissedRenderFrames bool    `yaml:"skip_missed_render_frames"`
	ShowFPS                bool    `yaml:"show_fps"`
	Sound                  bool    `yaml:"sound"`
	LogFile                string  `yaml:"log_file"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:                  parameter.DefaultWidth,
		Height:                 parameter.DefaultHeight,
		LogicPeriodMs:          float64(parameter.DefaultLogicPeriod.Milliseconds()),
		RenderPeriodMs:         float64(parameter.DefaultRenderPeriod.Milliseconds()),
		SkipMissedRenderFrames: true,
		Sound:                  true,
	}
}

// LogicPeriod converts the logic rate setting into a duration
func (c Config) LogicPeriod() time.Duration {
	return time.Duration(c.LogicPeriodMs * float64(time.Millisecond))
}

// RenderPeriod converts the render rate setting into a duration
func (c Config) RenderPeriod() time.Duration {
	return time.Duration(c.RenderPeriodMs * float64(time.Millisecond))
}
