package style_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/style"
	"github.com/pyk/xdgdir/pkg/xdg"
)

func sampleDirs(runtime string) xdg.BaseDirs {
	return xdg.BaseDirs{
		Home:    "/home/user",
		Config:  "/home/user/.config",
		Data:    "/home/user/.local/share",
		State:   "/home/user/.local/state",
		Cache:   "/home/user/.cache",
		Bin:     "/home/user/.local/bin",
		Runtime: runtime,
	}
}

func TestTerminalRenderDirs(t *testing.T) {
	r := style.NewTerminalRenderer()

	t.Run("all directories present", func(t *testing.T) {
		out := r.RenderDirs(sampleDirs("/run/user/1000"))

		for _, path := range []string{
			"/home/user",
			"/home/user/.config",
			"/home/user/.local/share",
			"/home/user/.local/state",
			"/home/user/.cache",
			"/home/user/.local/bin",
			"/run/user/1000",
		} {
			assert.Contains(t, out, path)
		}
		assert.Equal(t, 7, strings.Count(out, "\n")+1, "one line per directory")
	})

	t.Run("unset runtime annotated", func(t *testing.T) {
		out := r.RenderDirs(sampleDirs(""))
		assert.Contains(t, out, "(unset)")
	})
}

func TestPlainRenderDirs(t *testing.T) {
	r := style.NewPlainRenderer()

	t.Run("all directories present", func(t *testing.T) {
		out := r.RenderDirs(sampleDirs("/run/user/1000"))

		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 7)
		assert.Contains(t, lines[0], "home")
		assert.Contains(t, lines[0], "/home/user")
		assert.Contains(t, lines[6], "runtime")
		assert.Contains(t, lines[6], "/run/user/1000")
	})

	t.Run("unset runtime omitted", func(t *testing.T) {
		out := r.RenderDirs(sampleDirs(""))

		assert.NotContains(t, out, "runtime")
		assert.Len(t, strings.Split(out, "\n"), 6)
	})
}

func TestRenderError(t *testing.T) {
	term := style.NewTerminalRenderer()
	plain := style.NewPlainRenderer()

	t.Run("coded error shows code", func(t *testing.T) {
		err := errors.New(errors.ErrHomeNotSet, "$HOME is not set or empty")

		out := term.RenderError(err)
		assert.Contains(t, out, "HOME_NOT_SET")
		assert.Contains(t, out, "$HOME is not set or empty")
	})

	t.Run("generic error", func(t *testing.T) {
		err := stderrors.New("boom")

		assert.Contains(t, term.RenderError(err), "boom")
		assert.Equal(t, "Error: boom", plain.RenderError(err))
	})

	t.Run("nil error renders empty", func(t *testing.T) {
		assert.Empty(t, term.RenderError(nil))
		assert.Empty(t, plain.RenderError(nil))
	})
}
