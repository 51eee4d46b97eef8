package formatter

import (
	"fmt"
	"strings"

	"github.com/flowtik/flowtik/internal/timeutil"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderQuotaBar renders the day's progress against the working-hour quota
// as a bar like [████░░░░] 4.5h / 8h. Green once the quota is met, yellow
// above half, red below.
func RenderQuotaBar(workedHours float64, width int) string {
	if width < 2 {
		width = 2
	}

	pct := workedHours / timeutil.DailyQuotaHours
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	if pct >= 1 {
		style = StyleGreen
	} else if pct >= 0.5 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s / %sh",
		style.Render(bar),
		timeutil.FormatHours(workedHours),
		strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", timeutil.DailyQuotaHours), "0"), "."))
}
