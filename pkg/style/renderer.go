package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/xdg"
)

// Renderer defines the interface for rendering resolved directories
type Renderer interface {
	RenderDirs(dirs xdg.BaseDirs) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderDirs renders the directory set as aligned, colored label/path lines.
// An unset runtime directory is annotated rather than omitted, since this
// output is meant for humans.
func (r *TerminalRenderer) RenderDirs(dirs xdg.BaseDirs) string {
	var result strings.Builder

	for _, name := range xdg.Names() {
		label := DirStyle(name).Render(fmt.Sprintf("%-8s", name))

		path, err := dirs.Dir(name)
		if err != nil {
			result.WriteString(fmt.Sprintf("%s %s\n", label, MutedStyle.Render("(unset)")))
			continue
		}
		result.WriteString(fmt.Sprintf("%s %s\n", label, PathStyle.Render(path)))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	// Surface the error code when we have one
	var xdgErr *errors.XDGError
	if stderrors.As(err, &xdgErr) {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(xdgErr.Code)),
			xdgErr.Message)
	}

	// Generic error
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderDirs renders the directory set as aligned label/path lines,
// omitting the runtime directory when it is unset.
func (r *PlainRenderer) RenderDirs(dirs xdg.BaseDirs) string {
	var result strings.Builder

	for _, name := range xdg.Names() {
		path, err := dirs.Dir(name)
		if err != nil {
			continue
		}
		result.WriteString(fmt.Sprintf("%-8s %s\n", name, path))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
