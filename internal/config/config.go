// Package config manages the local server profile file and resolves the
// effective endpoint for a single invocation.
//
// Profiles live in a single YAML document at a platform-standard location
// (os.UserConfigDir()/unraid/config.yaml by default):
//
//	default: tower
//	servers:
//	  tower:
//	    url: https://192.168.1.100
//	    api_key: abc123
//	    insecure: true
//
// A missing file is treated as an empty configuration, never as an error.
// Every mutating command rewrites the whole file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrServerNotFound is returned when a named profile does not exist.
var ErrServerNotFound = errors.New("server not found in configuration")

// Server is a single named server profile.
type Server struct {
	URL      string `yaml:"url" validate:"required,url"`
	APIKey   string `yaml:"api_key" validate:"required"`
	Insecure bool   `yaml:"insecure,omitempty"`
}

// File is the on-disk profile document. Default, when set, names an
// entry of Servers; RemoveServer and SetDefault keep that invariant.
type File struct {
	Default string            `yaml:"default,omitempty"`
	Servers map[string]Server `yaml:"servers,omitempty"`
}

var validate = validator.New()

// DefaultPath returns the standard location of the profile file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "unraid", "config.yaml"), nil
}

// Load reads the profile file at path. A missing file yields an empty
// configuration.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the whole profile document to path, creating the parent
// directory if needed.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Server returns the profile for name, or the default profile when name
// is empty.
func (f *File) Server(name string) (Server, bool) {
	if name == "" {
		name = f.Default
	}
	if name == "" {
		return Server{}, false
	}
	s, ok := f.Servers[name]
	return s, ok
}

// AddServer upserts a profile. The profile is validated before it is
// stored so a bad URL never reaches the file.
func (f *File) AddServer(name string, s Server) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}
	if f.Servers == nil {
		f.Servers = make(map[string]Server)
	}
	f.Servers[name] = s
	return nil
}

// RemoveServer deletes a profile and reports whether it existed. The
// default pointer is cleared when it referenced the removed profile.
func (f *File) RemoveServer(name string) bool {
	if _, ok := f.Servers[name]; !ok {
		return false
	}
	delete(f.Servers, name)
	if f.Default == name {
		f.Default = ""
	}
	return true
}

// SetDefault marks an existing profile as the default.
func (f *File) SetDefault(name string) error {
	if _, ok := f.Servers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrServerNotFound, name)
	}
	f.Default = name
	return nil
}
