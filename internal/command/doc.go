// Package command normalizes server command lines before launch.
//
// # Extension Resolution
//
// On Windows, CreateProcess only appends ".exe" when searching for an
// executable. Language servers installed by npm or pub are usually ".cmd" or
// ".bat" wrappers, so a bare "typescript-language-server" cannot be started
// without its extension. ResolveExtension searches PATH the way the shell
// would and appends the wrapper extension when it finds one:
//
//	args := command.ResolveExtension([]string{"tsserver", "--stdio"}, exec.LookPath)
//	// []string{"tsserver.cmd", "--stdio"} when PATH holds tsserver.cmd
//
// Callers decide whether resolution applies on the current platform; see
// package platform.
//
// # Environment
//
// BuildEnvironment turns an environment map into the KEY=VALUE slice used by
// exec.Cmd. The map replaces the inherited environment entirely.
package command
