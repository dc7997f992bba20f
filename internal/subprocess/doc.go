// Package subprocess launches a language server as a child process with piped
// standard I/O.
//
// Launcher.Start resolves the command line for the current platform,
// provisions the server's working directory, and starts the process with the
// caller's environment. It returns a Process once the OS has confirmed
// creation; it never waits for the server to do anything.
//
// A Process is a plain capability struct: identity, the three stdio streams
// and a non-blocking liveness query. The caller that created it owns it and is
// the only one that may Close it.
package subprocess
