package siteconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

const (
	// EnvConfigPath names the environment variable holding the declaration
	// path.
	EnvConfigPath = "NAVTREE_CONFIG"

	// DefaultConfigPath is used when EnvConfigPath is unset.
	DefaultConfigPath = "site.hcl"
)

var (
	// ErrConfigNotFound is returned when the declaration file does not exist.
	ErrConfigNotFound = errors.New("site declaration not found")

	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported declaration format")
)

// Load reads, decodes and builds the declaration at path. Validation failures
// are returned as navigation.ValidationErrors.
func Load(path string) (*navigation.Site, error) {
	decl, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	site, err := navigation.Build(decl)
	if err != nil {
		return nil, fmt.Errorf("invalid site declaration %s: %w", path, err)
	}
	return site, nil
}

// LoadFromEnv loads the declaration named by NAVTREE_CONFIG, or site.hcl.
func LoadFromEnv() (*navigation.Site, error) {
	return Load(ConfigPathFromEnv())
}

// ConfigPathFromEnv returns the declaration path from the environment.
func ConfigPathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// DecodeFile reads path and decodes it according to its extension: .hcl,
// .yaml, .yml or .json.
func DecodeFile(path string) (navigation.Declaration, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return navigation.Declaration{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return navigation.Declaration{}, fmt.Errorf("error reading site declaration %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return DecodeHCL(src, path)
	case ".yaml", ".yml":
		return DecodeYAML(src)
	case ".json":
		return DecodeJSON(src)
	default:
		return navigation.Declaration{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeYAML decodes a YAML declaration. Unknown fields are rejected.
func DecodeYAML(src []byte) (navigation.Declaration, error) {
	var decl navigation.Declaration
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil {
		return navigation.Declaration{}, fmt.Errorf("error decoding YAML declaration: %w", err)
	}
	return decl, nil
}

// DecodeJSON decodes a JSON declaration. Unknown fields are rejected.
func DecodeJSON(src []byte) (navigation.Declaration, error) {
	var decl navigation.Declaration
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&decl); err != nil {
		return navigation.Declaration{}, fmt.Errorf("error decoding JSON declaration: %w", err)
	}
	return decl, nil
}
