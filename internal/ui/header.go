package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artex/internal/gallery"
	"github.com/five82/artex/internal/state"
)

// renderHeader renders the title bar: home hint, app name, fetch status and
// the dark-mode indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("⌂", styles.MutedText),
		bg.Render("Art Explorer", styles.Logo),
		m.statusText(styles, bg),
	}
	if !compact {
		parts = append(parts,
			bg.Render("Showing:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.snapshot.Artworks)), styles.Text),
			bg.Render("Favorites:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.controller.Favorites().Len()), styles.FavoriteText),
		)
	}
	parts = append(parts, bg.Render(ternary(m.controller.Dark(), "● Dark", "○ Light"), styles.AccentText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) statusText(styles Styles, bg BgStyle) string {
	switch m.snapshot.Phase {
	case state.PhaseLoading:
		return bg.Render(m.spinner.View()+" Searching", styles.WarningText)
	case state.PhaseError:
		return bg.Render("● Error", styles.DangerText)
	case state.PhaseSuccess:
		return bg.Render(fmt.Sprintf("● %d results", len(m.snapshot.Artworks)), styles.SuccessText)
	default:
		return bg.Render("● Idle", styles.FaintText)
	}
}

// renderCommandBar renders the search field and the filter and sort toggle groups.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	searchLabel := styles.MutedText
	if m.searching {
		searchLabel = styles.AccentText.Bold(true)
	}
	parts := []string{
		bg.Render("Search Artworks", searchLabel) + bg.Space() + m.search.View(),
		m.renderToggleGroup(styles, bg,
			[]string{gallery.FilterAll.Label(), gallery.FilterFavorites.Label()},
			m.controller.Filter().Label()),
		m.renderToggleGroup(styles, bg,
			[]string{gallery.SortNone.Label(), gallery.SortArtist.Label(), gallery.SortTitle.Label()},
			m.controller.Sort().Label()),
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderToggleGroup draws an exclusive button group with the active option highlighted.
func (m Model) renderToggleGroup(styles Styles, bg BgStyle, options []string, active string) string {
	rendered := make([]string, 0, len(options))
	for _, opt := range options {
		if opt == active {
			rendered = append(rendered, styles.Selected.Render(" "+opt+" "))
			continue
		}
		rendered = append(rendered, bg.Render(" "+opt+" ", styles.MutedText))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
