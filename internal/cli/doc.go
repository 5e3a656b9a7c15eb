package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/pyk/xdgdir/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed docs/reference.md
var docReference string

func newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: MsgDocShort,
		Long:  MsgDocLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := docReference
			if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
				content = renderMarkdown(content)
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

// renderMarkdown converts markdown to styled terminal output, falling back
// to the raw text when rendering is not possible.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
