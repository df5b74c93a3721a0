package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings are the startup values of the board.
type Settings struct {
	Width        float32 `toml:"width"`
	Color        string  `toml:"color"`
	CanvasWidth  int     `toml:"canvas_width"`
	CanvasHeight int     `toml:"canvas_height"`
	Scale        float64 `toml:"scale"`
	SnapshotPNG  string  `toml:"snapshot_png"`
	ExportPDF    string  `toml:"export_pdf"`
	Debug        bool    `toml:"debug"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Settings {
	return Settings{
		Width:        5,
		Color:        "#000",
		CanvasWidth:  1024,
		CanvasHeight: 768,
		Scale:        1,
	}
}

// LoadSettings reads a TOML file over the defaults. An empty path or a
// missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Defaults(), fmt.Errorf("decode settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the values a stroke would be started with.
func (s Settings) Validate() error {
	if _, err := ParseWidth(s.WidthString()); err != nil {
		return err
	}
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", s.CanvasWidth, s.CanvasHeight)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive", s.Scale)
	}
	return nil
}

// WidthString is the width as a range control would report it.
func (s Settings) WidthString() string {
	return fmt.Sprintf("%g", s.Width)
}
