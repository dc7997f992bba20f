//go:build !windows

package platform

import "os/exec"

var current = Capabilities{}

// hideWindow is a no-op: there is no console window to hide.
func hideWindow(_ *exec.Cmd) {}
