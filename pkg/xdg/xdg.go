package xdg

import (
	"path/filepath"
	"strings"

	"github.com/pyk/xdgdir/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfigHome overrides the base directory for user-specific configuration files
	EnvConfigHome = "XDG_CONFIG_HOME"

	// EnvDataHome overrides the base directory for user-specific data files
	EnvDataHome = "XDG_DATA_HOME"

	// EnvStateHome overrides the base directory for user-specific state data
	EnvStateHome = "XDG_STATE_HOME"

	// EnvCacheHome overrides the base directory for user-specific cached data
	EnvCacheHome = "XDG_CACHE_HOME"

	// EnvBinHome overrides the base directory for user-specific executables
	EnvBinHome = "XDG_BIN_HOME"

	// EnvRuntimeDir holds the base directory for user-specific runtime files
	// such as sockets and PID files. It has no default and is normally set
	// by the session manager.
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
)

// Default locations relative to $HOME, used when the override variable is
// unset, empty, or not an absolute path. XDG_RUNTIME_DIR deliberately has
// no entry here.
const (
	DefaultConfigDir = ".config"
	DefaultDataDir   = ".local/share"
	DefaultStateDir  = ".local/state"
	DefaultCacheDir  = ".cache"
	DefaultBinDir    = ".local/bin"
)

// Directory names accepted by BaseDirs.Dir
const (
	NameHome    = "home"
	NameConfig  = "config"
	NameData    = "data"
	NameState   = "state"
	NameCache   = "cache"
	NameBin     = "bin"
	NameRuntime = "runtime"
)

// Names returns the directory names BaseDirs.Dir accepts, in display order.
func Names() []string {
	return []string{NameHome, NameConfig, NameData, NameState, NameCache, NameBin, NameRuntime}
}

// BaseDirs holds the six base directories of the XDG Base Directory
// Specification plus the home directory they were derived from. Every
// populated field is an absolute path. Runtime is empty when
// XDG_RUNTIME_DIR was unset or unusable at resolution time; use
// RuntimeDir to get a typed error instead of an empty string.
//
// A BaseDirs is an immutable snapshot: it never changes after resolution,
// even if the environment does. Resolve again to observe new values.
type BaseDirs struct {
	Home    string `json:"home" yaml:"home" toml:"home"`
	Config  string `json:"config" yaml:"config" toml:"config"`
	Data    string `json:"data" yaml:"data" toml:"data"`
	State   string `json:"state" yaml:"state" toml:"state"`
	Cache   string `json:"cache" yaml:"cache" toml:"cache"`
	Bin     string `json:"bin" yaml:"bin" toml:"bin"`
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty" toml:"runtime,omitempty"`
}

// RuntimeDir returns the runtime directory, or an ErrRuntimeDirNotSet
// error when XDG_RUNTIME_DIR was unset, empty or relative at resolution
// time. The XDG spec requires the session manager to provide this
// directory, so there is no fallback to guess.
func (b BaseDirs) RuntimeDir() (string, error) {
	if b.Runtime == "" {
		return "", errors.New(errors.ErrRuntimeDirNotSet, "$XDG_RUNTIME_DIR is not set or empty")
	}
	return b.Runtime, nil
}

// Dir returns the directory registered under name: one of home, config,
// data, state, cache, bin or runtime. Asking for runtime when it is unset
// returns ErrRuntimeDirNotSet; unknown names return ErrInvalidInput.
func (b BaseDirs) Dir(name string) (string, error) {
	switch name {
	case NameHome:
		return b.Home, nil
	case NameConfig:
		return b.Config, nil
	case NameData:
		return b.Data, nil
	case NameState:
		return b.State, nil
	case NameCache:
		return b.Cache, nil
	case NameBin:
		return b.Bin, nil
	case NameRuntime:
		return b.RuntimeDir()
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown directory %q", name).
			WithDetail("name", name)
	}
}

// Scope returns a copy of b with appName appended as a single path segment
// to the config, data, state and cache directories. Bin and runtime keep
// their global values: executables and runtime sockets are shared across
// applications rather than namespaced per application.
func (b BaseDirs) Scope(appName string) (BaseDirs, error) {
	if err := ValidateAppName(appName); err != nil {
		return BaseDirs{}, err
	}
	b.Config = filepath.Join(b.Config, appName)
	b.Data = filepath.Join(b.Data, appName)
	b.State = filepath.Join(b.State, appName)
	b.Cache = filepath.Join(b.Cache, appName)
	return b, nil
}

// ValidateAppName checks that name can serve as a per-application path
// segment: non-empty, no path separators, and not "." or "..".
func ValidateAppName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidAppName, "application name is empty")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.Newf(errors.ErrInvalidAppName, "application name %q contains a path separator", name).
			WithDetail("name", name)
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidAppName, "application name %q is not a valid directory name", name).
			WithDetail("name", name)
	}
	return nil
}
