package config

import (
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

const (
	DefaultExtension    = ".mp4"
	DefaultIdentifier   = "ln-szln"
	DefaultPrefixLength = 18
	DefaultMaxWorkers   = 4
	DefaultBinary       = "ffmpeg"
	DefaultEncoder      = "h264_videotoolbox"
	DefaultQuality      = "50"
	DefaultLogLevel     = "info"

	OrderLexical = "lexical"
	OrderNatural = "natural"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Discovery   DiscoveryConfig   `yaml:"discovery"`
	Grouping    GroupingConfig    `yaml:"grouping"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Resize      ResizeConfig      `yaml:"resize"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

type DiscoveryConfig struct {
	Extension     string `yaml:"extension"`
	Identifier    string `yaml:"identifier"`
	RemoveDSStore bool   `yaml:"remove_ds_store"`
}

// GroupingConfig controls how clips are bucketed for concatenation.
// PrefixLength is an opaque naming-convention constant of the recorder that produced the clips.
type GroupingConfig struct {
	PrefixLength int    `yaml:"prefix_length"`
	MemberOrder  string `yaml:"member_order"`
}

type FFmpegConfig struct {
	Binary     string `yaml:"binary"`
	Encoder    string `yaml:"encoder"`
	Quality    string `yaml:"quality"`
	ShowOutput bool   `yaml:"show_output"`
}

// ResizeConfig selects the resize pipeline when Size is set
type ResizeConfig struct {
	Size  string `yaml:"size"`
	Watch bool   `yaml:"watch"`
}

type PerformanceConfig struct {
	MaxWorkers int `yaml:"max_workers"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Progress bool   `yaml:"progress"`
}

// Default returns a Config populated with the built-in defaults
func Default() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			Extension:  DefaultExtension,
			Identifier: DefaultIdentifier,
		},
		Grouping: GroupingConfig{
			PrefixLength: DefaultPrefixLength,
			MemberOrder:  OrderLexical,
		},
		FFmpeg: FFmpegConfig{
			Binary:  DefaultBinary,
			Encoder: DefaultEncoder,
			Quality: DefaultQuality,
		},
		Performance: PerformanceConfig{
			MaxWorkers: DefaultMaxWorkers,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ResizeMode reports whether the resize pipeline was requested
func (c *Config) ResizeMode() bool {
	return c.Resize.Size != ""
}

func (c *Config) Validate() error {
	if c.Paths.Source == "" {
		return fmt.Errorf("paths.source is required")
	}
	if c.Paths.Destination == "" {
		return fmt.Errorf("paths.destination is required")
	}
	if filepath.Clean(c.Paths.Source) == filepath.Clean(c.Paths.Destination) {
		return fmt.Errorf("paths.destination must differ from paths.source")
	}
	if c.Grouping.PrefixLength < 0 {
		return fmt.Errorf("grouping.prefix_length must not be negative")
	}
	if c.Performance.MaxWorkers < 0 {
		return fmt.Errorf("performance.max_workers must not be negative")
	}

	if c.Discovery.Extension == "" {
		c.Discovery.Extension = DefaultExtension
	}
	if c.Grouping.PrefixLength == 0 {
		c.Grouping.PrefixLength = DefaultPrefixLength
	}
	if c.Grouping.MemberOrder == "" {
		c.Grouping.MemberOrder = OrderLexical
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = DefaultBinary
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = DefaultEncoder
	}
	if c.FFmpeg.Quality == "" {
		c.FFmpeg.Quality = DefaultQuality
	}
	if c.Performance.MaxWorkers == 0 {
		c.Performance.MaxWorkers = DefaultMaxWorkers
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Grouping.MemberOrder != OrderLexical && c.Grouping.MemberOrder != OrderNatural {
		return fmt.Errorf("grouping.member_order must be %q or %q, got %q", OrderLexical, OrderNatural, c.Grouping.MemberOrder)
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// ResolvePaths makes both roots absolute and clean so that discovered paths and
// mirrored destinations share the same prefix form.
func (c *Config) ResolvePaths() error {
	src, err := filepath.Abs(c.Paths.Source)
	if err != nil {
		return fmt.Errorf("resolve source %s: %w", c.Paths.Source, err)
	}
	dst, err := filepath.Abs(c.Paths.Destination)
	if err != nil {
		return fmt.Errorf("resolve destination %s: %w", c.Paths.Destination, err)
	}
	c.Paths.Source = src
	c.Paths.Destination = dst
	return nil
}
