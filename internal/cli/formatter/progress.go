package formatter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// RenderShare renders part/total as a bar like ████░░░░  45%.
// An empty total renders an empty bar at 0%.
func RenderShare(part, total, width int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(part) / float64(total)
	}
	return RenderProgress(pct, width)
}

// RenderProgress renders pct in [0,1] as a solid bar followed by the rounded
// percentage. Green above two thirds, yellow above one third, red below.
func RenderProgress(pct float64, width int) string {
	pct = max(0, min(pct, 1))
	width = max(width, 2)

	color := ColorGreen
	switch {
	case pct < 0.33:
		color = ColorRed
	case pct < 0.66:
		color = ColorYellow
	}

	bar := progress.New(
		progress.WithWidth(width),
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorDim)

	return fmt.Sprintf("%s %3.0f%%", bar.ViewAs(pct), pct*100)
}
