package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// source supplies setting values. Keys of the returned map are lowercase; values are string, bool, float64 (from JSON), or int (from defaults).
type source interface {
	Name() string
	Values() (map[string]any, error)
	Providence(key string) Providence
}

// Loader applies sources to a Config from lowest to highest priority. The zero value is ready to use; New exists for chaining.
type Loader struct {
	sources []source
}

// New returns an empty Loader.
func New() *Loader {
	return &Loader{}
}

// WithDefaults registers m as a source of default values.
func (l *Loader) WithDefaults(m map[string]any) *Loader {
	l.sources = append(l.sources, &mapSource{isDefaults: true, m: m})
	return l
}

// WithMap registers m as a source, for values that come from neither files nor the environment (ex: tests, command-line overrides).
func (l *Loader) WithMap(m map[string]any) *Loader {
	l.sources = append(l.sources, &mapSource{m: m})
	return l
}

// WithJSONFile registers the JSON object file at path. It is read at load time.
func (l *Loader) WithJSONFile(path string) *Loader {
	l.sources = append(l.sources, &jsonFileSource{path: path})
	return l
}

// WithNearestJSONFile searches upward from startDir (the working directory if empty) for the first non-empty file at the relative path fileName, and registers it.
// If none is found the loader is unchanged. It panics if fileName is absolute.
func (l *Loader) WithNearestJSONFile(fileName string, startDir string) *Loader {
	if filepath.IsAbs(fileName) {
		panic("fileName shouldn't be absolute")
	}
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return l
		}
		startDir = wd
	}
	if path := nearestFile(fileName, startDir); path != "" {
		l.sources = append(l.sources, &jsonFileSource{path: path})
	}
	return l
}

// WithEnv registers environment variables as a source. env maps setting keys to variable names. Unset and empty variables are ignored.
func (l *Loader) WithEnv(env map[string]string) *Loader {
	l.sources = append(l.sources, &envSource{keyToEnv: env})
	return l
}

// Load applies every source in order and validates the result.
func (l *Loader) Load() (Config, error) {
	cfg := Config{Providence: map[string]Providence{}}
	for _, src := range l.sources {
		values, err := src.Values()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return Config{}, fmt.Errorf("%s: %w", src.Name(), err)
		}
		for key, raw := range values {
			apply, ok := setters[key]
			if !ok {
				continue
			}
			if err := apply(&cfg, raw); err != nil {
				return Config{}, fmt.Errorf("%s: %s: %w", src.Name(), key, err)
			}
			cfg.Providence[key] = src.Providence(key)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var setters = map[string]func(*Config, any) error{
	"theme": func(c *Config, v any) (err error) {
		c.Theme, err = asString(v)
		return err
	},
	"context": func(c *Config, v any) (err error) {
		c.Context, err = asInt(v)
		return err
	},
	"casesensitive": func(c *Config, v any) (err error) {
		c.CaseSensitive, err = asBool(v)
		return err
	},
	"color": func(c *Config, v any) error {
		// Booleans are accepted as always/never.
		if b, err := asBool(v); err == nil {
			c.Color = ColorNever
			if b {
				c.Color = ColorAlways
			}
			return nil
		}
		s, err := asString(v)
		c.Color = strings.ToLower(s)
		return err
	},
	"tabwidth": func(c *Config, v any) (err error) {
		c.TabWidth, err = asInt(v)
		return err
	},
	"diffalgorithm": func(c *Config, v any) (err error) {
		s, err := asString(v)
		c.DiffAlgorithm = strings.ToLower(s)
		return err
	},
}

func asString(v any) (string, error) {
	switch vv := v.(type) {
	case string:
		return strings.TrimSpace(vv), nil
	case bool, int, float64:
		return fmt.Sprint(vv), nil
	}
	return "", fmt.Errorf("%w: %T is not a string", ErrInvalid, v)
}

func asInt(v any) (int, error) {
	switch vv := v.(type) {
	case int:
		return vv, nil
	case float64:
		if vv != math.Trunc(vv) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalid, vv)
		}
		return int(vv), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(vv))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalid, vv)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalid, v)
}

func asBool(v any) (bool, error) {
	switch vv := v.(type) {
	case bool:
		return vv, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(vv)) {
		case "1", "t", "true", "yes", "on":
			return true, nil
		case "0", "f", "false", "no", "off":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalid, vv)
	}
	return false, fmt.Errorf("%w: %T is not a boolean", ErrInvalid, v)
}

type mapSource struct {
	isDefaults bool
	m          map[string]any
}

func (s *mapSource) Name() string {
	if s.isDefaults {
		return "Defaults"
	}
	return "Go Map"
}

func (s *mapSource) Values() (map[string]any, error) {
	out := make(map[string]any, len(s.m))
	for k, v := range s.m {
		out[strings.ToLower(k)] = v
	}
	return out, nil
}

func (s *mapSource) Providence(string) Providence {
	if s.isDefaults {
		return Providence{SourceType: "default"}
	}
	return Providence{SourceType: "map"}
}

type jsonFileSource struct {
	path string
}

func (s *jsonFileSource) Name() string {
	return fmt.Sprintf("JSON File: %s", s.path)
}

// Values reads the file. Empty or whitespace-only files contribute nothing.
func (s *jsonFileSource) Values() (map[string]any, error) {
	data, err := os.ReadFile(ExpandPath(s.path))
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		lk := strings.ToLower(k)
		if _, dup := out[lk]; dup {
			return nil, fmt.Errorf("duplicate key %q (keys are case-insensitive)", lk)
		}
		out[lk] = v
	}
	return out, nil
}

func (s *jsonFileSource) Providence(string) Providence {
	return Providence{SourceType: "json_file", SourceIdentifier: ExpandPath(s.path)}
}

type envSource struct {
	keyToEnv map[string]string
}

func (s *envSource) Name() string {
	return "ENV"
}

func (s *envSource) Values() (map[string]any, error) {
	out := map[string]any{}
	for key, envVar := range s.keyToEnv {
		if envVar == "" {
			continue
		}
		// An empty variable is treated as unset so it cannot clobber a file setting.
		if val, ok := os.LookupEnv(envVar); ok && val != "" {
			out[strings.ToLower(key)] = val
		}
	}
	return out, nil
}

func (s *envSource) Providence(key string) Providence {
	return Providence{SourceType: "env", SourceIdentifier: s.keyToEnv[key]}
}

// nearestFile returns the first non-empty, readable file named fileName in dir or one of its ancestors, or "".
func nearestFile(fileName, dir string) string {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil && strings.TrimSpace(string(data)) != "" {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ExpandPath expands a leading "~" to the user's home directory and makes the result absolute.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	expanded := path
	if strings.HasPrefix(expanded, "~") {
		if home, _ := os.UserHomeDir(); home != "" {
			switch {
			case expanded == "~" || expanded == "~/" || expanded == `~\`:
				expanded = home
			case strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`):
				expanded = filepath.Join(home, expanded[2:])
			}
		}
	}
	if !filepath.IsAbs(expanded) {
		if abs, err := filepath.Abs(expanded); err == nil {
			expanded = abs
		}
	}
	return expanded
}
