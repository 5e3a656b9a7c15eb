package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pyk/xdgdir/pkg/xdg"
)

// Base styles
var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// DirStyle returns the label style for a directory name
func DirStyle(name string) lipgloss.Style {
	color := HeadingColor
	switch name {
	case xdg.NameConfig:
		color = ConfigColor
	case xdg.NameData:
		color = DataColor
	case xdg.NameState:
		color = StateColor
	case xdg.NameCache:
		color = CacheColor
	case xdg.NameBin:
		color = BinColor
	case xdg.NameRuntime:
		color = RuntimeColor
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
