package command

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// ScriptExtensions lists the wrapper extensions CreateProcess cannot find on
// its own, in match order. node ships ".cmd" shims and dart ships ".bat";
// ".exe" needs no help.
var ScriptExtensions = []string{".cmd", ".bat"}

// LookPathFunc searches the executable lookup path for a file.
// exec.LookPath satisfies it.
type LookPathFunc func(file string) (string, error)

// ResolveExtension returns args with the executable's script extension made
// explicit when the bare name resolves, through lookPath, to an allow-listed
// wrapper. In every other case args is returned unchanged. args is never
// modified; a rewrite produces a new slice.
func ResolveExtension(args []string, lookPath LookPathFunc) []string {
	if len(args) == 0 {
		return args
	}

	executable := args[0]
	if filepath.Ext(executable) != "" {
		return args
	}

	if lookPath == nil {
		lookPath = exec.LookPath
	}

	found, err := lookPath(executable)
	if err != nil || found == "" {
		return args
	}

	lower := strings.ToLower(found)
	for _, ext := range ScriptExtensions {
		if !strings.HasSuffix(lower, ext) {
			continue
		}

		resolved := make([]string, 0, len(args))
		resolved = append(resolved, executable+ext)
		resolved = append(resolved, args[1:]...)

		return resolved
	}

	return args
}
