// Package config loads the demo configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/xqrs/gridview"
)

var (
	ErrInvalidGrid      = errors.New("grid rows and cols must be positive")
	ErrInvalidDropMode  = errors.New("unknown drop mode")
	ErrInvalidThreshold = errors.New("drop insert threshold must be in (0, 0.5)")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidGenerate  = errors.New("catalog generate count must not be negative")
	ErrInvalidBorder    = errors.New("unknown border set")
	ErrInvalidGlyphs    = errors.New("unknown scrollbar glyph set")
)

// Config holds the demo configuration.
type Config struct {
	Grid    GridConfig    `mapstructure:"grid"`
	Drop    DropConfig    `mapstructure:"drop"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Watch   bool          `mapstructure:"watch"`
}

// GridConfig holds the list geometry and behaviour.
type GridConfig struct {
	Rows            int    `mapstructure:"rows"`
	Cols            int    `mapstructure:"cols"`
	FollowSelection bool   `mapstructure:"follow_selection"`
	ReuseCells      bool   `mapstructure:"reuse_cells"`
	ShowScrollbar   bool   `mapstructure:"show_scrollbar"`
	Border          string `mapstructure:"border"`
	ScrollbarGlyphs string `mapstructure:"scrollbar_glyphs"`
}

// DropConfig holds drag and drop settings.
type DropConfig struct {
	Mode            string  `mapstructure:"mode"`
	InsertThreshold float64 `mapstructure:"insert_threshold"`
}

// CatalogConfig says where items come from. Path wins over Generate.
type CatalogConfig struct {
	Path     string `mapstructure:"path"`
	Generate int    `mapstructure:"generate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// DefaultPath returns $XDG_CONFIG_HOME/gridview/config.toml, falling back to
// the platform config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			dir = filepath.Join(os.Getenv("HOME"), ".config")
		}
	}
	return filepath.Join(dir, "gridview", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.rows", 4)
	v.SetDefault("grid.cols", 4)
	v.SetDefault("grid.follow_selection", true)
	v.SetDefault("grid.reuse_cells", false)
	v.SetDefault("grid.show_scrollbar", true)
	v.SetDefault("grid.border", "round")
	v.SetDefault("grid.scrollbar_glyphs", "minimal")
	v.SetDefault("drop.mode", gridview.DropOnOrInsert.String())
	v.SetDefault("drop.insert_threshold", 0.2)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.generate", 200)
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "gridview.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("watch", false)
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing file at the default location yields the defaults. Environment
// variables prefixed with GRIDVIEW_ override file values, e.g.
// GRIDVIEW_GRID_ROWS.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("GRIDVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values Load cannot type-check.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Grid.Rows, c.Grid.Cols)
	}
	if _, err := c.BorderSet(); err != nil {
		return err
	}
	if _, err := c.GlyphSet(); err != nil {
		return err
	}
	if _, err := c.DropMode(); err != nil {
		return err
	}
	if t := c.Drop.InsertThreshold; t <= 0 || t >= 0.5 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, t)
	}
	if c.Catalog.Generate < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGenerate, c.Catalog.Generate)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// BorderSet returns the border glyphs of the list.
func (c Config) BorderSet() (gridview.BorderSet, error) {
	set, err := gridview.ParseBorderSet(c.Grid.Border)
	if err != nil {
		return gridview.BorderSet{}, fmt.Errorf("%w: %q", ErrInvalidBorder, c.Grid.Border)
	}
	return set, nil
}

// GlyphSet returns the scrollbar glyphs.
func (c Config) GlyphSet() (gridview.GlyphSet, error) {
	set, err := gridview.ParseGlyphSet(c.Grid.ScrollbarGlyphs)
	if err != nil {
		return gridview.GlyphSet{}, fmt.Errorf("%w: %q", ErrInvalidGlyphs, c.Grid.ScrollbarGlyphs)
	}
	return set, nil
}

// DropMode returns the parsed drop mode.
func (c Config) DropMode() (gridview.DropMode, error) {
	mode, err := gridview.ParseDropMode(c.Drop.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDropMode, c.Drop.Mode)
	}
	return mode, nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return level, nil
}
