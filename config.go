package panes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/panes/gui"
)

// Config holds the settings of a pane host. Zero fields take defaults.
type Config struct {
	RefreshRate int    `toml:"refresh_rate"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Title       string `toml:"title"`
	Style       string `toml:"style"`
	LogFile     string `toml:"log_file"`
	Verbose     bool   `toml:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		RefreshRate: DefaultRefreshRate,
		Width:       800,
		Height:      600,
		Title:       "panes",
		Style:       "default",
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.RefreshRate == 0 {
		c.RefreshRate = d.RefreshRate
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Style == "" {
		c.Style = d.Style
	}
}

// Validate checks the settings after defaults are applied.
func (c Config) Validate() error {
	if c.RefreshRate <= 0 {
		return fmt.Errorf("refresh_rate: %w: %d", ErrInvalidRate, c.RefreshRate)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative window size %dx%d", c.Width, c.Height)
	}
	if _, ok := gui.StyleByName(c.Style); !ok {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	return nil
}

// FrameInterval returns the redraw period for RefreshRate.
func (c Config) FrameInterval() time.Duration {
	d, err := FrameInterval(c.RefreshRate)
	if err != nil {
		d, _ = FrameInterval(DefaultRefreshRate)
	}
	return d
}

// GUIStyle resolves Style, falling back to the default style.
func (c Config) GUIStyle() gui.Style {
	s, ok := gui.StyleByName(c.Style)
	if !ok {
		return gui.DefaultStyle()
	}
	return s
}

// ParseConfig decodes TOML settings. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads settings from path. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig stores cfg at path as TOML.
func WriteConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WatchConfig reloads path whenever it is written and sends the result to
// out until ctx is done. Files that fail to load are logged and skipped.
// The parent directory is watched so editors that replace the file are
// followed.
func WatchConfig(ctx context.Context, path string, out chan<- Config) error {
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	path = filepath.Clean(path)
	if err := watch.Add(filepath.Dir(path)); err != nil {
		watch.Close()
		return fmt.Errorf("watch config: %w", err)
	}
	go func() {
		defer watch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					Logger().Warn("Config reload failed", slog.Any("err", err))
					continue
				}
				Logger().Info("Config reloaded", slog.String("path", path), slog.Int("refreshRate", cfg.RefreshRate))
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				Logger().Warn("Config watch error", slog.Any("err", err))
			}
		}
	}()
	return nil
}
