// Package workdir provisions the private working directory of each server.
//
// Every server gets <base>/LSP/<name>, where base is the host's cache
// directory when it provides one and the OS temporary directory otherwise.
// Provisioning is idempotent.
package workdir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wagiedev/langserver-go/internal/config"
	"github.com/wagiedev/langserver-go/internal/errors"
)

// Namespace is the directory under the base path that holds all servers.
const Namespace = "LSP"

// dirPerm is the permission used for created directories.
const dirPerm = 0o750

// HostEnvironment supplies the host's cache directory, if it has one.
type HostEnvironment interface {
	CachePath() (string, bool)
}

// NoHost is a HostEnvironment without a cache directory.
type NoHost struct{}

// CachePath implements HostEnvironment.
func (NoHost) CachePath() (string, bool) { return "", false }

// StaticHost is a HostEnvironment with a fixed cache directory.
// An empty StaticHost behaves like NoHost.
type StaticHost string

// CachePath implements HostEnvironment.
func (h StaticHost) CachePath() (string, bool) { return string(h), h != "" }

// UserCacheHost uses the per-user cache directory (os.UserCacheDir).
type UserCacheHost struct{}

// CachePath implements HostEnvironment.
func (UserCacheHost) CachePath() (string, bool) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", false
	}

	return dir, true
}

// Provisioner computes and creates server working directories.
type Provisioner struct {
	log  *slog.Logger
	host HostEnvironment
}

// NewProvisioner creates a Provisioner. A nil host falls back to NoHost.
func NewProvisioner(log *slog.Logger, host HostEnvironment) *Provisioner {
	if host == nil {
		host = NoHost{}
	}

	return &Provisioner{
		log:  log.With("component", "workdir"),
		host: host,
	}
}

// Base returns the base directory the namespace lives under.
func (p *Provisioner) Base() string {
	if dir, ok := p.host.CachePath(); ok && dir != "" {
		return dir
	}

	return os.TempDir()
}

// Path returns the working directory for cfg without creating it.
func (p *Provisioner) Path(cfg config.LaunchConfig) (string, error) {
	name := cfg.Name()
	if err := validateName(name); err != nil {
		return "", &errors.DirectoryError{Path: filepath.Join(p.Base(), Namespace, name), Err: err}
	}

	dir, err := filepath.Abs(filepath.Join(p.Base(), Namespace, name))
	if err != nil {
		return "", &errors.DirectoryError{Path: name, Err: err}
	}

	return dir, nil
}

// Ensure returns the working directory for cfg, creating every missing
// segment. An existing directory is not an error.
func (p *Provisioner) Ensure(cfg config.LaunchConfig) (string, error) {
	dir, err := p.Path(cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		p.log.Error("Failed to create working directory", "dir", dir, "error", err)

		return "", &errors.DirectoryError{Path: dir, Err: err}
	}

	p.log.Debug("Working directory ready", "dir", dir)

	return dir, nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return errors.ErrEmptyName
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", errors.ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", errors.ErrInvalidName, name)
	}

	return nil
}
