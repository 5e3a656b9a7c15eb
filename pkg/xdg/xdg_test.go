package xdg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/xdg"
)

func testDirs(t *testing.T, env map[string]string) xdg.BaseDirs {
	t.Helper()
	dirs, err := xdg.NewResolver(xdg.MapEnviron(env)).Global()
	require.NoError(t, err)
	return dirs
}

func TestDir(t *testing.T) {
	dirs := testDirs(t, map[string]string{
		"HOME":            "/home/user",
		"XDG_RUNTIME_DIR": "/run/user/1000",
	})

	tests := []struct {
		name     string
		expected string
	}{
		{xdg.NameHome, "/home/user"},
		{xdg.NameConfig, "/home/user/.config"},
		{xdg.NameData, "/home/user/.local/share"},
		{xdg.NameState, "/home/user/.local/state"},
		{xdg.NameCache, "/home/user/.cache"},
		{xdg.NameBin, "/home/user/.local/bin"},
		{xdg.NameRuntime, "/run/user/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dirs.Dir(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := dirs.Dir("fonts")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("runtime when unset", func(t *testing.T) {
		noRuntime := testDirs(t, map[string]string{"HOME": "/home/user"})
		_, err := noRuntime.Dir(xdg.NameRuntime)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuntimeDirNotSet))
	})
}

func TestScope(t *testing.T) {
	global := testDirs(t, map[string]string{
		"HOME":            "/home/user",
		"XDG_RUNTIME_DIR": "/run/user/1000",
	})

	scoped, err := global.Scope("editor")
	require.NoError(t, err)

	assert.Equal(t, "/home/user/.config/editor", scoped.Config)
	assert.Equal(t, "/home/user/.local/share/editor", scoped.Data)
	assert.Equal(t, "/home/user/.local/state/editor", scoped.State)
	assert.Equal(t, "/home/user/.cache/editor", scoped.Cache)
	assert.Equal(t, global.Bin, scoped.Bin)
	assert.Equal(t, global.Runtime, scoped.Runtime)
	assert.Equal(t, global.Home, scoped.Home)

	// the receiver is a value, so the global set is untouched
	assert.Equal(t, "/home/user/.config", global.Config)
}

func TestScopeInvalidName(t *testing.T) {
	global := testDirs(t, map[string]string{"HOME": "/home/user"})

	for _, name := range []string{"", "a/b", ".", ".."} {
		_, err := global.Scope(name)
		require.Error(t, err, "name %q", name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAppName))
	}
}

func TestValidateAppName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "myapp", false},
		{"hyphenated name", "my-app", false},
		{"dotted name", "app.d", false},
		{"empty", "", true},
		{"path separator", "a/b", true},
		{"current dir", ".", true},
		{"parent dir", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := xdg.ValidateAppName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAppName))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"home", "config", "data", "state", "cache", "bin", "runtime"}, xdg.Names())
}
