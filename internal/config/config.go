// Package config loads the optional toolbelt settings file. The file is a
// CUE document whose path comes from the TOOLBELT_CONFIG environment
// variable; when unset every setting keeps its default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/greyfold/toolbelt/internal/numparse"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "TOOLBELT_CONFIG"

// Settings holds the resolved configuration. All fields are optional in
// the file.
type Settings struct {
	// Title is set once as the console window title at startup.
	Title string
	// Prompt prefixes every calculator prompt line.
	Prompt string
	// Decimal selects the numeric parse convention.
	Decimal numparse.Convention
}

// Defaults returns the settings used when no config file is present.
func Defaults() Settings {
	return Settings{Decimal: numparse.Auto}
}

// Load resolves the config path from the environment and parses it.
// An unset variable is not an error.
func Load() (Settings, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Defaults(), nil
	}
	return Parse(path)
}

// Parse loads and validates a CUE settings file.
func Parse(path string) (Settings, error) {
	if filepath.Ext(path) != ".cue" {
		return Settings{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %v", err)
	}

	s := Defaults()
	if err := optionalStringField(v, "title", &s.Title); err != nil {
		return Settings{}, err
	}
	if err := optionalStringField(v, "prompt", &s.Prompt); err != nil {
		return Settings{}, err
	}
	var decimal string
	if err := optionalStringField(v, "decimal", &decimal); err != nil {
		return Settings{}, err
	}
	if decimal != "" {
		switch numparse.Convention(decimal) {
		case numparse.Auto, numparse.Dot, numparse.Comma:
			s.Decimal = numparse.Convention(decimal)
		default:
			return Settings{}, errors.New("invalid value for field: decimal (expected auto, dot or comma)")
		}
	}
	return s, nil
}

func optionalStringField(v cue.Value, name string, out *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(out); err != nil {
		return fmt.Errorf("invalid value for field: %s (%v)", name, err)
	}
	return nil
}
