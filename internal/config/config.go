// Package config loads the settings of the cropbox command from
// defaults, an optional configuration file, the environment, and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"github.com/spf13/viper"
)

// ErrInvalid is returned, wrapped, when a loaded configuration fails
// validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is the prefix of environment variables that override
// configuration keys. For example, CROPBOX_BOX_MIN_WIDTH overrides
// box.min_width.
const EnvPrefix = "CROPBOX"

// Config is the complete configuration of the command.
type Config struct {
	// Box constrains crop boxes measured in the units of gesture
	// scripts and rendered previews.
	Box BoxConfig `mapstructure:"box" yaml:"box"`

	// Play constrains the interactive box, measured in terminal cells.
	Play BoxConfig `mapstructure:"play" yaml:"play"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BoxConfig holds the constraints of a crop box.
type BoxConfig struct {
	MinWidth    float64 `mapstructure:"min_width" yaml:"min_width"`
	MinHeight   float64 `mapstructure:"min_height" yaml:"min_height"`
	HitDistance float64 `mapstructure:"hit_distance" yaml:"hit_distance"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`

	// File is where the interactive mode writes its log, as it can't
	// use the terminal.
	File string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the configuration used for any key that is not
// set elsewhere.
func Defaults() Config {
	return Config{
		Box: BoxConfig{
			MinWidth:    cropbox.DefaultMinSize.X,
			MinHeight:   cropbox.DefaultMinSize.Y,
			HitDistance: cropbox.DefaultHitDistance,
		},
		Play: BoxConfig{
			MinWidth:    8,
			MinHeight:   4,
			HitDistance: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   defaultLogFile(),
		},
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "cropbox", "play.log")
}

// NewViper returns a viper instance set up to read the cropbox
// configuration. If file is not empty, it is used as the
// configuration file. Otherwise a file named cropbox.yaml, .toml, or
// .json is searched for in the user's configuration directory and
// then the working directory.
func NewViper(file string) *viper.Viper {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("cropbox")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "cropbox"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Defaults())
	return v
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("box.min_width", d.Box.MinWidth)
	v.SetDefault("box.min_height", d.Box.MinHeight)
	v.SetDefault("box.hit_distance", d.Box.HitDistance)

	v.SetDefault("play.min_width", d.Play.MinWidth)
	v.SetDefault("play.min_height", d.Play.MinHeight)
	v.SetDefault("play.hit_distance", d.Play.HitDistance)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// Load reads the configuration file, if there is one, and returns the
// resulting configuration. A missing configuration file that was
// searched for, rather than named explicitly, is not an error.
func Load(v *viper.Viper) (*Config, error) {
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that c describes usable boxes.
func (c *Config) Validate() error {
	err := c.Box.validate()
	if err != nil {
		return fmt.Errorf("box: %w", err)
	}
	err = c.Play.validate()
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

func (c BoxConfig) validate() error {
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return fmt.Errorf("%w: minimum size %vx%v must be positive", ErrInvalid, c.MinWidth, c.MinHeight)
	}
	if c.HitDistance < 0 {
		return fmt.Errorf("%w: hit distance %v is negative", ErrInvalid, c.HitDistance)
	}
	return nil
}

// MinSize returns the configured minimum size as a point.
func (c BoxConfig) MinSize() cropbox.Point {
	return geom.Pt(c.MinWidth, c.MinHeight)
}

// Box returns a cropbox.Box for a container of size frame under the
// constraints in c.
func (c BoxConfig) Box(frame cropbox.Point) cropbox.Box {
	return cropbox.Box{
		Frame:       frame,
		MinSize:     c.MinSize(),
		HitDistance: c.HitDistance,
	}
}
