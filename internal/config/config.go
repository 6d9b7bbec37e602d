// Package config loads annotext settings from a cascade of sources with predictable precedence.
//
// Sources, lowest to highest priority:
//   - built-in defaults
//   - the user config file, ~/.annotext/config.json
//   - the nearest project config file, .annotext/config.json, searched upward from the working directory
//   - environment variables (ANNOTEXT_THEME, ANNOTEXT_CONTEXT, ...)
//
// Keys are case-insensitive. Unknown keys are ignored. Missing, unreadable, and empty files contribute nothing. A file that cannot be parsed, or a value that cannot
// be coerced to its setting's type, fails the load with an error naming the source; later sources are not consulted to "fix" it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrInvalid is wrapped by every error caused by a bad setting value.
var ErrInvalid = errors.New("config: invalid value")

// Color modes.
const (
	ColorAuto   = "auto"   // color when stdout is a terminal
	ColorAlways = "always" // always emit ANSI escapes
	ColorNever  = "never"  // never emit ANSI escapes
)

// Config is the effective configuration. The json tags are used for `annotext config` output.
type Config struct {
	Theme         string `json:"theme"`         // theme name; see theme.Names
	Context       int    `json:"context"`       // unified diff context lines
	CaseSensitive bool   `json:"casesensitive"` // default for find
	Color         string `json:"color"`         // ColorAuto, ColorAlways, or ColorNever
	TabWidth      int    `json:"tabwidth"`      // tab stop width when painting
	DiffAlgorithm string `json:"diffalgorithm"` // "greedy" or "lcs"

	// Providence records, per setting key, the source that last set it.
	Providence map[string]Providence `json:"-"`
}

// Providence identifies where a setting's value came from.
type Providence struct {
	SourceType       string // "default", "json_file", "env", or "map"
	SourceIdentifier string // file path for json_file, variable name for env; otherwise ""
}

// IsSet reports whether any source set the value.
func (p Providence) IsSet() bool {
	return p.SourceType != ""
}

// Default reports whether the value is the built-in default.
func (p Providence) Default() bool {
	return p.SourceType == "default"
}

func (p Providence) String() string {
	if p.SourceIdentifier == "" {
		return p.SourceType
	}
	return p.SourceType + " " + p.SourceIdentifier
}

// Defaults are the built-in settings.
var Defaults = map[string]any{
	"theme":         "default",
	"context":       3,
	"casesensitive": false,
	"color":         ColorAuto,
	"tabwidth":      4,
	"diffalgorithm": "greedy",
}

// Env maps setting keys to the environment variables that override them.
var Env = map[string]string{
	"theme":         "ANNOTEXT_THEME",
	"context":       "ANNOTEXT_CONTEXT",
	"casesensitive": "ANNOTEXT_CASE_SENSITIVE",
	"color":         "ANNOTEXT_COLOR",
	"tabwidth":      "ANNOTEXT_TAB_WIDTH",
	"diffalgorithm": "ANNOTEXT_DIFF_ALGORITHM",
}

// Load loads the standard cascade described in the package doc and validates the result.
func Load() (Config, error) {
	loader := New().
		WithDefaults(Defaults).
		WithJSONFile(ExpandPath("~/.annotext/config.json")).
		WithNearestJSONFile(filepath.Join(".annotext", "config.json"), "").
		WithEnv(Env)

	cfg, err := loader.Load()
	if err != nil {
		return Config{}, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks settings that are well-typed but out of range.
func (c Config) Validate() error {
	var problems []string
	if c.Context < 0 {
		problems = append(problems, fmt.Sprintf("context must be >= 0 (got %d)", c.Context))
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		problems = append(problems, fmt.Sprintf("tabwidth must be between 1 and 16 (got %d)", c.TabWidth))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("color must be %q, %q, or %q (got %q)", ColorAuto, ColorAlways, ColorNever, c.Color))
	}
	switch c.DiffAlgorithm {
	case "greedy", "lcs":
	default:
		problems = append(problems, fmt.Sprintf("diffalgorithm must be \"greedy\" or \"lcs\" (got %q)", c.DiffAlgorithm))
	}
	if strings.TrimSpace(c.Theme) == "" {
		problems = append(problems, "theme must not be empty")
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

// WriteJSON writes c as indented JSON.
func (c Config) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(c)
}
