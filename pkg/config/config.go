package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/xdg"
)

const (
	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. XDGDIR_APP or XDGDIR_OUTPUT_FORMAT.
	EnvPrefix = "XDGDIR_"

	// appDirName is the per-application segment for xdgdir's own files
	appDirName = "xdgdir"
)

// Config holds the runtime configuration of the CLI
type Config struct {
	// App is the default application name used to scope directories
	// when no name is given on the command line.
	App string `koanf:"app"`

	// Output controls how resolved directories are rendered.
	Output OutputConfig `koanf:"output"`
}

// OutputConfig holds output rendering settings
type OutputConfig struct {
	// Format is one of: auto, term, text, env, json, yaml, toml
	Format string `koanf:"format"`
}

// defaults returns the base configuration every load starts from
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app":           "",
		"output.format": "auto",
	}
}

// Path returns the user config file location: ConfigFileName inside the
// config directory scoped to this tool. It fails when no usable $HOME
// is available to resolve against.
func Path() (string, error) {
	dirs, err := xdg.ForApp(appDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.Config, ConfigFileName), nil
}

// Load builds the configuration by merging, in order of precedence:
//  1. built-in defaults
//  2. the user config file, when one exists
//  3. XDGDIR_-prefixed environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, when the resolver can locate one. A missing
	// $HOME is not an error here: the CLI must still work with explicit
	// arguments and env overrides.
	if path, err := Path(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
					WithDetail("path", path)
			}
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// envToKey maps XDGDIR_OUTPUT_FORMAT to output.format
func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
