package main

import (
	"fmt"
	"os"

	"github.com/pyk/xdgdir/internal/cli"
	"github.com/pyk/xdgdir/pkg/style"
	"github.com/pyk/xdgdir/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var renderer style.Renderer = style.NewPlainRenderer()
		if ui.DetectFormat(os.Stderr) == ui.FormatTerminal {
			renderer = style.NewTerminalRenderer()
		}

		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
