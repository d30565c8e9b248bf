package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artex/internal/met"
)

// detailModal shows every decoded field of one artwork in a scrollable box.
type detailModal struct {
	art      met.Artwork
	favorite bool
	viewport viewport.Model
}

func newDetailModal(art met.Artwork, favorite bool, theme Theme, width, height int) *detailModal {
	w, h := detailSize(width, height)
	vp := viewport.New(w-4, h-4)
	d := &detailModal{art: art, favorite: favorite, viewport: vp}
	d.viewport.SetContent(d.content(theme, w-4))
	return d
}

func detailSize(width, height int) (int, int) {
	w := min(max(width*2/3, 40), 100)
	h := min(max(height-4, 10), 30)
	return w, h
}

// Update scrolls the viewport. Esc, enter and i close the modal.
func (d *detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Details):
		return d, nil, true
	case key.Matches(keyMsg, keys.Quit):
		return d, tea.Quit, true
	case key.Matches(keyMsg, keys.Down):
		d.viewport.LineDown(1)
	case key.Matches(keyMsg, keys.Up):
		d.viewport.LineUp(1)
	case key.Matches(keyMsg, keys.Top):
		d.viewport.GotoTop()
	case key.Matches(keyMsg, keys.Bottom):
		d.viewport.GotoBottom()
	}
	return d, nil, false
}

func (d *detailModal) View(theme Theme, width, height int) string {
	w, h := detailSize(width, height)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 1).
		Width(w - 2).
		Height(h - 2).
		Render(d.viewport.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (d *detailModal) content(theme Theme, width int) string {
	styles := theme.Styles()
	a := d.art

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(orFallback(a.Title, "Untitled")))
	if d.favorite {
		b.WriteString("  " + styles.FavoriteText.Render("♥"))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(orFallback(a.ArtistDisplayName, "Unknown artist")))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Object", fmt.Sprintf("%d", a.ObjectID)},
		{"Date", a.ObjectDate},
		{"Medium", a.Medium},
		{"Dimensions", a.Dimensions},
		{"Department", a.Department},
		{"Culture", a.Culture},
		{"Credit", a.CreditLine},
		{"Public domain", ternary(a.IsPublicDomain, "yes", "no")},
		{"Image", a.ImageURL()},
		{"Link", a.ObjectURL},
	}
	label := styles.FaintText.Width(15)
	valueWidth := max(width-15, 10)
	for _, r := range rows {
		if strings.TrimSpace(r.value) == "" {
			continue
		}
		value := lipgloss.NewStyle().Width(valueWidth).Render(r.value)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(r.label), styles.Text.Render(value)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
