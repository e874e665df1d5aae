package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hina-Kagiyama/nbterm/internal/input/keymap"
	"github.com/Hina-Kagiyama/nbterm/internal/input/mode"
	"github.com/Hina-Kagiyama/nbterm/internal/logging"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the configuration file inside the config
// directory.
const FileName = "config.toml"

// ScriptName is the Lua file run after the configuration is applied.
const ScriptName = "init.lua"

// Config is the decoded configuration file.
type Config struct {
	Editor Editor           `toml:"editor"`
	Log    Log              `toml:"log"`
	Theme  ThemeSpec        `toml:"theme"`
	Keys   keymap.Overrides `toml:"keys"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Editor holds the [editor] section.
type Editor struct {
	LineNumbers        bool `toml:"line_numbers"`
	WordWrap           bool `toml:"word_wrap"`
	AutoIndent         bool `toml:"auto_indent"`
	SyntaxHighlighting bool `toml:"syntax_highlighting"`
	AutoComplete       bool `toml:"auto_complete"`
	AutoCloseBrackets  bool `toml:"auto_close_brackets"`
	AutoCloseQuotes    bool `toml:"auto_close_quotes"`
	TabWidth           int  `toml:"tab_width"`
	ScrollOff          int  `toml:"scroll_off"`
	ReadOnly           bool `toml:"read_only"`
}

// Log holds the [log] section.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	st := session.DefaultSettings()
	return &Config{
		Editor: Editor{
			LineNumbers:        st.LineNumbers,
			WordWrap:           st.WordWrap,
			AutoIndent:         st.AutoIndent,
			SyntaxHighlighting: st.SyntaxHighlighting,
			AutoComplete:       st.AutoComplete,
			AutoCloseBrackets:  st.AutoCloseBrackets,
			AutoCloseQuotes:    st.AutoCloseQuotes,
			TabWidth:           st.TabWidth,
			ScrollOff:          st.ScrollOff,
			ReadOnly:           st.ReadOnly,
		},
		Log:   Log{Level: "info"},
		Theme: DefaultThemeSpec(),
	}
}

// Dir returns the nbterm configuration directory.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "nbterm"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nbterm"), nil
}

// DefaultPath returns the path of the configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes data on top of the defaults and validates it. path is
// used in error messages.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	cfg.Path = path

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, decodeError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeError(path string, err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		de := strict.Errors[0]
		line, col := de.Position()
		return &ParseError{
			Path:    path,
			Line:    line,
			Column:  col,
			Message: "unknown key " + strings.Join(de.Key(), "."),
			Err:     err,
		}
	}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		line, col := de.Position()
		return &ParseError{Path: path, Line: line, Column: col, Message: de.Error(), Err: err}
	}
	return &ParseError{Path: path, Message: err.Error(), Err: err}
}

// Validate checks values that decode but make no sense.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return invalid(c.Path, "editor.tab_width", "%d is out of range 1..16", c.Editor.TabWidth)
	}
	if c.Editor.ScrollOff < 0 {
		return invalid(c.Path, "editor.scroll_off", "must not be negative")
	}
	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return invalid(c.Path, "log.level", "unknown level %q", c.Log.Level)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return &ParseError{Path: c.Path, Message: err.Error(), Err: err}
	}
	for name := range c.Keys {
		if _, ok := mode.ParseMode(name); !ok {
			return invalid(c.Path, "keys."+name, "unknown mode")
		}
	}
	return nil
}

// Settings converts the [editor] section into session settings.
func (c *Config) Settings() session.Settings {
	e := c.Editor
	return session.Settings{
		LineNumbers:        e.LineNumbers,
		WordWrap:           e.WordWrap,
		AutoIndent:         e.AutoIndent,
		SyntaxHighlighting: e.SyntaxHighlighting,
		AutoComplete:       e.AutoComplete,
		AutoCloseBrackets:  e.AutoCloseBrackets,
		AutoCloseQuotes:    e.AutoCloseQuotes,
		TabWidth:           e.TabWidth,
		ScrollOff:          e.ScrollOff,
		ReadOnly:           e.ReadOnly,
	}
}

// Keymaps returns the default bindings with the [keys] overrides applied.
func (c *Config) Keymaps() (*keymap.Set, error) {
	set, err := keymap.Default().Apply(c.Keys)
	if err != nil {
		return nil, &ParseError{Path: c.Path, Message: err.Error(), Err: err}
	}
	return set, nil
}

// ResolvedTheme returns the theme colors. Validate has already checked them
// for loaded configurations.
func (c *Config) ResolvedTheme() Theme {
	th, err := c.Theme.Resolve()
	if err != nil {
		th, _ = DefaultThemeSpec().Resolve()
	}
	return th
}
