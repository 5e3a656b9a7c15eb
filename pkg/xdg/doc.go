// Package xdg resolves the base directories defined by the XDG Base
// Directory Specification: config, data, state, cache, executables and
// runtime. Resolution is a pure function of the environment. It creates
// nothing, checks nothing on disk and performs no I/O. An absolute,
// non-empty override variable wins verbatim; anything else falls back to
// a default derived from $HOME. XDG_RUNTIME_DIR has no default and is
// reported as unset rather than guessed.
package xdg
