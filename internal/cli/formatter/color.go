package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/flowtik/flowtik/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TimerStateBadge returns a colored indicator for the derived timer state.
func TimerStateBadge(state domain.TimerState) string {
	switch state {
	case domain.TimerRunning:
		return StyleGreen.Render("● RUNNING")
	case domain.TimerOnBreak:
		return StyleYellow.Render("◌ ON BREAK")
	case domain.TimerIdle:
		return StyleDim.Render("○ IDLE")
	default:
		return StyleDim.Render(string(state))
	}
}

// QuotaPill returns a colored indicator for daily quota attainment.
func QuotaPill(met bool) string {
	if met {
		return StyleGreen.Render("✔ Quota met")
	}
	return StyleYellow.Render("○ Below quota")
}

// VariancePill renders a formatted variance, red when the task ran over
// its estimate and green when it came in under.
func VariancePill(over bool, formatted string) string {
	if over {
		return StyleRed.Render("+" + formatted)
	}
	return StyleGreen.Render("-" + formatted)
}

// QueryStatusPill returns a colored status indicator for a task query.
func QueryStatusPill(status domain.QueryStatus) string {
	switch status {
	case domain.QueryOpen:
		return StyleYellow.Render("● Open")
	case domain.QueryResolved:
		return StyleGreen.Render("✔ Resolved")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
