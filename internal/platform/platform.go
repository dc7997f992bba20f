// Package platform answers, once per launch, which process-creation quirks
// the current operating system needs.
package platform

import "os/exec"

// Capabilities describes the launch adjustments the host OS requires.
type Capabilities struct {
	// ResolveExtensions is true when process creation does not search for
	// script wrappers (.cmd, .bat) by itself.
	ResolveExtensions bool

	// HideWindow is true when a child would otherwise get a visible console
	// window.
	HideWindow bool
}

// Current returns the capabilities of the running OS.
func Current() Capabilities {
	return current
}

// Apply adjusts cmd for caps. It must be called before cmd.Start.
func Apply(cmd *exec.Cmd, caps Capabilities) {
	if caps.HideWindow {
		hideWindow(cmd)
	}
}
