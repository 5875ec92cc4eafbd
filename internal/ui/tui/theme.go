package tui

import (
	"github.com/bamsammich/termchart/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette, mutable so config can override.
var (
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorBlue   = lipgloss.Color("#89b4fa")
	ColorYellow = lipgloss.Color("#f9e2af")
	ColorRed    = lipgloss.Color("#f38ba8")
	ColorTeal   = lipgloss.Color("#94e2d5")
	ColorMauve  = lipgloss.Color("#cba6f7")
	ColorMuted  = lipgloss.Color("#5a6278")
	ColorDim    = lipgloss.Color("#3a4055")
	ColorBright = lipgloss.Color("#cdd6f4")
)

// Pre-built styles, rebuilt by rebuildStyles() after color changes.
var (
	styleHeader       lipgloss.Style
	styleHeaderLabel  lipgloss.Style
	styleTab          lipgloss.Style
	styleTabActive    lipgloss.Style
	styleSection      lipgloss.Style
	styleBigNumber    lipgloss.Style
	styleStat         lipgloss.Style
	styleSparkline    lipgloss.Style
	styleWaveform     lipgloss.Style
	styleBars         lipgloss.Style
	styleDonut        lipgloss.Style
	styleMap          lipgloss.Style
	styleTable        lipgloss.Style
	styleProgress     lipgloss.Style
	styleEmpty        lipgloss.Style
	styleError        lipgloss.Style
	styleKeybindKey   lipgloss.Style
	styleKeybindLabel lipgloss.Style
	styleStatus       lipgloss.Style
	styleSavePrompt   lipgloss.Style
	styleSaveInput    lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs all lipgloss styles from the current color vars.
func rebuildStyles() {
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBright)
	styleHeaderLabel = lipgloss.NewStyle().Bold(true).Foreground(ColorMauve)
	styleTab = lipgloss.NewStyle().Foreground(ColorMuted)
	styleTabActive = lipgloss.NewStyle().Foreground(ColorMauve).Bold(true).Underline(true)
	styleSection = lipgloss.NewStyle().Foreground(ColorDim)
	styleBigNumber = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	styleStat = lipgloss.NewStyle().Foreground(ColorTeal)
	styleSparkline = lipgloss.NewStyle().Foreground(ColorBlue)
	styleWaveform = lipgloss.NewStyle().Foreground(ColorTeal)
	styleBars = lipgloss.NewStyle().Foreground(ColorGreen)
	styleDonut = lipgloss.NewStyle().Foreground(ColorMauve)
	styleMap = lipgloss.NewStyle().Foreground(ColorYellow)
	styleTable = lipgloss.NewStyle().Foreground(ColorBright)
	styleProgress = lipgloss.NewStyle().Foreground(ColorGreen)
	styleEmpty = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	styleError = lipgloss.NewStyle().Foreground(ColorRed)
	styleKeybindKey = lipgloss.NewStyle().Foreground(ColorMauve).Bold(true)
	styleKeybindLabel = lipgloss.NewStyle().Foreground(ColorMuted)
	styleStatus = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
	styleSavePrompt = lipgloss.NewStyle().Foreground(ColorMuted)
	styleSaveInput = lipgloss.NewStyle().Foreground(ColorBright)
}

// ApplyTheme overrides colors from a config ThemeConfig and rebuilds all styles.
func ApplyTheme(tc config.ThemeConfig) {
	for _, o := range []struct {
		src *string
		dst *lipgloss.Color
	}{
		{tc.Green, &ColorGreen},
		{tc.Blue, &ColorBlue},
		{tc.Yellow, &ColorYellow},
		{tc.Red, &ColorRed},
		{tc.Teal, &ColorTeal},
		{tc.Mauve, &ColorMauve},
		{tc.Muted, &ColorMuted},
		{tc.Dim, &ColorDim},
		{tc.Bright, &ColorBright},
	} {
		if o.src != nil {
			*o.dst = lipgloss.Color(*o.src)
		}
	}
	rebuildStyles()
}
