package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}
)

// Directory specific colors
var (
	ConfigColor = lipgloss.AdaptiveColor{
		Light: "#0EA5E9", // Sky blue
		Dark:  "#38BDF8",
	}

	DataColor = lipgloss.AdaptiveColor{
		Light: "#8B5CF6", // Purple
		Dark:  "#A78BFA",
	}

	StateColor = lipgloss.AdaptiveColor{
		Light: "#F59E0B", // Orange
		Dark:  "#FBBF24",
	}

	CacheColor = lipgloss.AdaptiveColor{
		Light: "#10B981", // Emerald
		Dark:  "#34D399",
	}

	BinColor = lipgloss.AdaptiveColor{
		Light: "#EC4899", // Pink
		Dark:  "#F472B6",
	}

	RuntimeColor = lipgloss.AdaptiveColor{
		Light: "#14B8A6", // Teal
		Dark:  "#2DD4BF",
	}
)
