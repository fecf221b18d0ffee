//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads wasd settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/timburks/wasd/pkg/editor"
	"github.com/timburks/wasd/pkg/history"
)

// ErrInvalid is returned for settings that are out of range.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	TabWidth     int    `toml:"tab_width"`
	HistoryLimit int    `toml:"history_limit"`
	LogFile      string `toml:"log_file"`
	Debug        bool   `toml:"debug"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		TabWidth:     editor.DefaultTabWidth,
		HistoryLimit: history.DefaultLimit,
		LogFile:      filepath.Join(os.Getenv("HOME"), ".wasdlog"),
	}
}

// DefaultPath is $HOME/.config/wasd/config.toml.
func DefaultPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "wasd", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	_, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return c, fmt.Errorf("reading %s: %w", path, err)
	}
	return c, c.Validate()
}

// Parse reads settings from TOML text over the defaults.
func Parse(text string) (Config, error) {
	c := Default()
	if _, err := toml.Decode(text, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width %d must be between 1 and 16", ErrInvalid, c.TabWidth)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit %d must not be negative", ErrInvalid, c.HistoryLimit)
	}
	return nil
}

// EngineOptions converts the settings into engine options.
func (c Config) EngineOptions() []editor.Option {
	return []editor.Option{
		editor.WithTabWidth(c.TabWidth),
		editor.WithHistoryLimit(c.HistoryLimit),
		editor.WithDebug(c.Debug),
	}
}
