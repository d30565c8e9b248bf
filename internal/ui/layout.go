package ui

import "time"

// Terminal width thresholds for the card grid.
const (
	// LayoutFourColumns is the minimum width for four card columns.
	LayoutFourColumns = 160

	// LayoutThreeColumns is the minimum width for three card columns.
	LayoutThreeColumns = 110

	// LayoutTwoColumns is the minimum width for two card columns.
	LayoutTwoColumns = 70

	// LayoutCompactWidth hides secondary header details below this width.
	LayoutCompactWidth = 100
)

// Card geometry.
const (
	// cardLines is the number of content lines inside a card.
	cardLines = 4

	// cardHeight includes the top and bottom border.
	cardHeight = cardLines + 2

	// cardGap separates adjacent card columns.
	cardGap = 1
)

// DefaultDebounce is the quiet period after typing before a fetch starts.
const DefaultDebounce = 300 * time.Millisecond

// gridColumns returns the card column count for a terminal width.
func gridColumns(width int) int {
	switch {
	case width >= LayoutFourColumns:
		return 4
	case width >= LayoutThreeColumns:
		return 3
	case width >= LayoutTwoColumns:
		return 2
	default:
		return 1
	}
}
