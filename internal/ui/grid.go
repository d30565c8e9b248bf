package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artex/internal/met"
	"github.com/five82/artex/internal/state"
)

// noResultsMessage replaces the grid when nothing is visible.
const noResultsMessage = "No artworks found."

// refreshVisible re-derives the visible list and keeps the selected card by
// object id when it is still visible.
func (m *Model) refreshVisible() {
	var selectedID int64
	if art, ok := m.selectedArtwork(); ok {
		selectedID = art.ObjectID
	}

	m.visible = m.controller.Visible(m.snapshot.Artworks)
	if len(m.visible) == 0 {
		m.selected = 0
		m.rowOffset = 0
		return
	}
	if selectedID != 0 {
		for i, art := range m.visible {
			if art.ObjectID == selectedID {
				m.selected = i
				m.clampRowOffset()
				return
			}
		}
	}
	m.selected = min(m.selected, len(m.visible)-1)
	m.clampRowOffset()
}

func (m Model) selectedArtwork() (met.Artwork, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return met.Artwork{}, false
	}
	return m.visible[m.selected], true
}

// moveSelection moves by dx cards within a row and dy rows.
func (m *Model) moveSelection(dx, dy int) {
	if len(m.visible) == 0 {
		return
	}
	cols := gridColumns(m.width)
	next := m.selected + dx + dy*cols
	if dx != 0 {
		row := m.selected / cols
		next = min(max(next, row*cols), row*cols+cols-1)
	}
	if next < 0 || next >= len(m.visible) {
		if dy == 0 {
			return
		}
		next = min(max(next, 0), len(m.visible)-1)
	}
	m.selected = next
	m.clampRowOffset()
}

func (m *Model) selectIndex(i int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = min(max(i, 0), len(m.visible)-1)
	m.clampRowOffset()
}

// visibleRows is how many card rows fit in the content area.
func (m Model) visibleRows() int {
	return max(m.contentHeight()/cardHeight, 1)
}

// clampRowOffset scrolls so the selected card's row is on screen.
func (m *Model) clampRowOffset() {
	row := m.selected / gridColumns(m.width)
	rows := m.visibleRows()
	if row < m.rowOffset {
		m.rowOffset = row
	}
	if row >= m.rowOffset+rows {
		m.rowOffset = row - rows + 1
	}
}

// renderContent renders the area below the command bar for the current phase.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var body string
	switch {
	case m.snapshot.Phase == state.PhaseLoading:
		body = m.spinner.View() + " " + styles.MutedText.Render("Loading...")
	case m.snapshot.Phase == state.PhaseError && m.snapshot.Err != nil:
		body = styles.DangerText.Render(m.snapshot.Err.Error())
	case len(m.visible) > 0:
		return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(m.renderGrid())
	default:
		body = styles.MutedText.Render(noResultsMessage)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderGrid() string {
	cols := gridColumns(m.width)
	cardWidth := max((m.width-(cols-1)*cardGap)/cols, 12)
	first := m.rowOffset * cols
	last := min(first+m.visibleRows()*cols, len(m.visible))

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		cards := make([]string, 0, cols*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(m.visible[i], cardWidth, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one artwork: title, artist, favourite marker with date,
// and the image URL standing in for the picture.
func (m Model) renderCard(art met.Artwork, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-4, 4) // border plus horizontal padding

	heart := styles.FaintText.Render("♡")
	if m.controller.IsFavorite(art.ObjectID) {
		heart = styles.FavoriteText.Render("♥")
	}
	date := ""
	if art.ObjectDate != "" {
		date = " " + styles.MutedText.Render(truncate(art.ObjectDate, inner-2))
	}
	image := styles.FaintText
	if !art.HasImage() {
		image = image.Italic(true)
	}

	lines := []string{
		styles.Text.Bold(true).Render(truncate(orFallback(art.Title, "Untitled"), inner)),
		styles.MutedText.Render(truncate(art.ArtistDisplayName, inner)),
		heart + date,
		image.Render(truncateMiddle(art.ImageURL(), inner)),
	}

	frame := styles.Card
	if selected {
		frame = styles.CardFocus
	}
	return frame.Width(width - 2).Render(strings.Join(lines, "\n"))
}
