package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a usage bar like [████░░░░] 45%. Every bar in this
// tool measures screen-time burden, so color runs the alarming way: green
// below 33%, yellow up to 66%, red above.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct >= 0.66 {
		style = StyleRed
	} else if pct >= 0.33 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s", style.Render(bar), fmt.Sprintf("%3.0f%%", pct*100))
}
