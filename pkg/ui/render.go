package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/style"
	"github.com/pyk/xdgdir/pkg/xdg"
)

// Render writes dirs to w in the given format. FormatAuto callers should
// resolve the format with DetectFormat first; an unresolved auto renders
// as plain text.
func Render(w io.Writer, dirs xdg.BaseDirs, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dirs); err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "failed to encode JSON")
		}
		return nil

	case FormatYAML:
		data, err := yaml.Marshal(dirs)
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "failed to encode YAML")
		}
		_, err = w.Write(data)
		return err

	case FormatTOML:
		data, err := toml.Marshal(dirs)
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "failed to encode TOML")
		}
		_, err = w.Write(data)
		return err

	case FormatEnv:
		_, err := io.WriteString(w, RenderEnv(dirs))
		return err

	case FormatTerminal:
		_, err := fmt.Fprintln(w, style.NewTerminalRenderer().RenderDirs(dirs))
		return err

	default: // FormatText and unresolved FormatAuto
		_, err := fmt.Fprintln(w, style.NewPlainRenderer().RenderDirs(dirs))
		return err
	}
}

// RenderEnv renders dirs as shell-style key=value lines, one directory per
// line in display order, omitting runtime when it is unset.
func RenderEnv(dirs xdg.BaseDirs) string {
	var b strings.Builder
	for _, name := range xdg.Names() {
		path, err := dirs.Dir(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", name, path)
	}
	return b.String()
}
