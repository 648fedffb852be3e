// Package storage writes the generated calendar file.
//
// It handles the path conveniences the CLI promises: a leading ~/ expands to
// the user's home directory and missing parent directories are created. The
// calendar is written in one shot from the fully-assembled in-memory text,
// so there is no partial-write state to recover from.
package storage
