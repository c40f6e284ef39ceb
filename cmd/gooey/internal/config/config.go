// Package config loads gooey runtime settings.
//
// Settings come from, in increasing priority: built-in defaults, a
// gooey.yaml file, GOOEY_* environment variables, and command-line flags.
// The file is taken from GOOEY_CONFIG if set, otherwise searched for in the
// working directory and then $HOME/.config/gooey.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/raster"
)

// Config holds gooey runtime settings.
type Config struct {
	Frame  FrameConfig
	Log    LogConfig
	Scene  SceneConfig
	Render RenderConfig

	// File is the config file that was read, or "" if none was found.
	File string `mapstructure:"-"`
}

// FrameConfig controls the frame loop and canvas size.
type FrameConfig struct {
	FPS    int
	Width  int
	Height int
}

// LogConfig controls the log file. An empty File logs to stderr.
type LogConfig struct {
	File    string
	Verbose bool
}

// SceneConfig selects the scene to present. An empty Path means the
// built-in demo scene.
type SceneConfig struct {
	Path string
}

// RenderConfig controls headless rendering.
type RenderConfig struct {
	Format string
	Frames int
	Out    string
	Scale  int
}

// MaxFPS bounds frame.fps. Above it the frame interval rounds toward zero.
const MaxFPS = 1000

var (
	ErrInvalidFPS  = fmt.Errorf("frame.fps must be between 1 and %d", MaxFPS)
	ErrInvalidSize = stderrors.New("frame size must be positive")
	ErrFrames      = stderrors.New("render.frames must be positive")
	ErrScale       = stderrors.New("render.scale must be at least 1")
)

// DefaultLogFile returns the default log path under the user cache
// directory.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "gooey", "gooey.log")
	}
	return filepath.Join(dir, "gooey", "gooey.log")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frame.fps", 30)
	v.SetDefault("frame.width", 160)
	v.SetDefault("frame.height", 96)
	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.verbose", false)
	v.SetDefault("scene.path", "")
	v.SetDefault("render.format", string(raster.FormatPNG))
	v.SetDefault("render.frames", 30)
	v.SetDefault("render.out", "frames")
	v.SetDefault("render.scale", 1)
}

// Load resolves settings. Flags in fs whose names match a setting key
// ("fps" binds frame.fps and so on, see FlagKeys) override every other
// source when set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path := os.Getenv("GOOEY_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gooey")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gooey"))
		}
	}

	v.SetEnvPrefix("GOOEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range FlagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, configError(err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, configError(fmt.Errorf("read config: %w", err))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, configError(fmt.Errorf("unmarshal config: %w", err))
	}
	c.File = v.ConfigFileUsed()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// FlagKeys maps command-line flag names to setting keys.
var FlagKeys = map[string]string{
	"fps":     "frame.fps",
	"width":   "frame.width",
	"height":  "frame.height",
	"log":     "log.file",
	"verbose": "log.verbose",
	"scene":   "scene.path",
	"format":  "render.format",
	"frames":  "render.frames",
	"out":     "render.out",
	"scale":   "render.scale",
}

// Validate checks setting ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Frame.FPS <= 0 || c.Frame.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidFPS, c.Frame.FPS))
	}
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Frame.Width, c.Frame.Height))
	}
	if _, err := raster.ParseFormat(c.Render.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Render.Frames <= 0 {
		errs = append(errs, ErrFrames)
	}
	if c.Render.Scale < 1 {
		errs = append(errs, ErrScale)
	}
	if err := stderrors.Join(errs...); err != nil {
		return configError(err)
	}
	return nil
}

func configError(err error) error {
	return &errors.GooeyError{Op: "config.Load", Kind: errors.KindConfig, Err: err}
}
