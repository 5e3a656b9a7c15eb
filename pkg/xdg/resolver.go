package xdg

import (
	"os"
	"path/filepath"

	"github.com/pyk/xdgdir/pkg/errors"
)

// Environ looks up an environment variable, reporting whether it is set.
// os.LookupEnv satisfies it. Tests supply synthetic environments with
// MapEnviron so they never touch process state.
type Environ func(key string) (string, bool)

// MapEnviron returns an Environ backed by the given map.
func MapEnviron(vars map[string]string) Environ {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

// dirRule describes how one base directory resolves: the override variable
// to consult and the default location relative to $HOME. An empty fallback
// means the variable has no default and the field stays empty when the
// override is unusable.
type dirRule struct {
	envKey   string
	fallback string
	assign   func(*BaseDirs, string)
}

var dirRules = []dirRule{
	{EnvConfigHome, DefaultConfigDir, func(b *BaseDirs, p string) { b.Config = p }},
	{EnvDataHome, DefaultDataDir, func(b *BaseDirs, p string) { b.Data = p }},
	{EnvStateHome, DefaultStateDir, func(b *BaseDirs, p string) { b.State = p }},
	{EnvCacheHome, DefaultCacheDir, func(b *BaseDirs, p string) { b.Cache = p }},
	{EnvBinHome, DefaultBinDir, func(b *BaseDirs, p string) { b.Bin = p }},
	{EnvRuntimeDir, "", func(b *BaseDirs, p string) { b.Runtime = p }},
}

// Resolver computes XDG base directories from an environment snapshot.
// It holds no state beyond the environment lookup itself, so concurrent
// calls are safe and two calls against an unchanged environment return
// equal results. The zero value reads the process environment.
type Resolver struct {
	env Environ
}

// NewResolver returns a Resolver reading from env. A nil env means the
// process environment.
func NewResolver(env Environ) *Resolver {
	return &Resolver{env: env}
}

func (r *Resolver) getenv(key string) (string, bool) {
	if r.env == nil {
		return os.LookupEnv(key)
	}
	return r.env(key)
}

// Global resolves the six base directories with no application scoping.
// It fails with ErrHomeNotSet when $HOME is unset, empty or relative,
// since every default is derived from it. Runtime is left empty when
// XDG_RUNTIME_DIR carries no usable value.
func (r *Resolver) Global() (BaseDirs, error) {
	home, err := r.home()
	if err != nil {
		return BaseDirs{}, err
	}

	dirs := BaseDirs{Home: home}
	for _, rule := range dirRules {
		rule.assign(&dirs, r.lookup(rule, home))
	}
	return dirs, nil
}

// ForApp resolves the base directories scoped to appName: the application
// name is appended to config, data, state and cache, while bin and
// runtime keep their global values.
func (r *Resolver) ForApp(appName string) (BaseDirs, error) {
	dirs, err := r.Global()
	if err != nil {
		return BaseDirs{}, err
	}
	return dirs.Scope(appName)
}

// home returns $HOME, which must be set, non-empty and absolute for any
// default to be derivable.
func (r *Resolver) home() (string, error) {
	home, ok := r.getenv(EnvHome)
	if !ok || home == "" {
		return "", errors.New(errors.ErrHomeNotSet, "$HOME is not set or empty")
	}
	if !filepath.IsAbs(home) {
		return "", errors.Newf(errors.ErrHomeNotSet, "$HOME is not an absolute path: %q", home).
			WithDetail("home", home)
	}
	return home, nil
}

// lookup applies the per-variable precedence rule. An absolute, non-empty
// override wins verbatim, with no normalization. Anything else is treated
// as if the variable were not set, as the XDG spec requires, and the
// default under home applies. Rules without a default yield the empty
// string.
func (r *Resolver) lookup(rule dirRule, home string) string {
	if value, ok := r.getenv(rule.envKey); ok && value != "" && filepath.IsAbs(value) {
		return value
	}
	if rule.fallback == "" {
		return ""
	}
	return filepath.Join(home, rule.fallback)
}

// Global resolves the six base directories from the process environment.
func Global() (BaseDirs, error) {
	return NewResolver(nil).Global()
}

// ForApp resolves application-scoped base directories from the process
// environment.
func ForApp(appName string) (BaseDirs, error) {
	return NewResolver(nil).ForApp(appName)
}
