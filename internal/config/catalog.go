package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wagiedev/langserver-go/internal/errors"
)

// ServerConfig is one entry of a server catalog file.
type ServerConfig struct {
	// Name identifies the server and keys its working directory.
	Name string `yaml:"name" json:"name"`

	// Command is the argument vector; the first element is the executable.
	Command []string `yaml:"command" json:"command"`

	// Env holds variables layered over the caller's environment.
	Env map[string]string `yaml:"env,omitempty" json:"env,omitempty"`

	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// IsEnabled reports whether the server may be launched.
func (s ServerConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// LaunchConfig converts the entry into an immutable LaunchConfig.
func (s ServerConfig) LaunchConfig() LaunchConfig {
	return NewLaunchConfig(s.Name, s.Command)
}

// Environment returns base overlaid with the entry's Env. base is not modified.
func (s ServerConfig) Environment(base map[string]string) map[string]string {
	env := make(map[string]string, len(base)+len(s.Env))
	maps.Copy(env, base)
	maps.Copy(env, s.Env)

	return env
}

// Catalog is a set of named server definitions.
type Catalog struct {
	Servers []ServerConfig `yaml:"servers" json:"servers"`
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return catalog, nil
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := validateCatalogDocument(doc); err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(catalog.Servers))
	for _, server := range catalog.Servers {
		if _, dup := seen[server.Name]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate server %q", server.Name)
		}

		seen[server.Name] = struct{}{}
	}

	return &catalog, nil
}

// Lookup returns the enabled server with the given name.
func (c *Catalog) Lookup(name string) (ServerConfig, error) {
	for _, server := range c.Servers {
		if server.Name != name {
			continue
		}

		if !server.IsEnabled() {
			return ServerConfig{}, fmt.Errorf("%q: %w", name, errors.ErrServerDisabled)
		}

		return server, nil
	}

	return ServerConfig{}, fmt.Errorf("%q: %w", name, errors.ErrServerNotFound)
}

// Names returns the server names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Servers))
	for _, server := range c.Servers {
		names = append(names, server.Name)
	}

	return names
}
