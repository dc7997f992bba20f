package command

import (
	"os"
	"slices"
	"strings"
)

// BuildEnvironment converts env into a sorted KEY=VALUE slice.
//
// The result replaces the inherited environment: a nil or empty map yields an
// empty, non-nil slice, which exec.Cmd treats as "no variables" rather than
// "inherit".
func BuildEnvironment(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for key, value := range env {
		result = append(result, key+"="+value)
	}

	slices.Sort(result)

	return result
}

// CurrentEnvironment returns the calling process environment as a map.
// Entries without '=' are skipped.
func CurrentEnvironment() map[string]string {
	environ := os.Environ()

	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}

		env[key] = value
	}

	return env
}
