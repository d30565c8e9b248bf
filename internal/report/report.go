package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/five82/artex/internal/gallery"
	"github.com/five82/artex/internal/met"
)

// Format selects how results are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// DefaultTitleWidth caps the title column when the output width is unknown.
const DefaultTitleWidth = 60

// EmptyMessage is printed in table mode when nothing is visible.
const EmptyMessage = "No artworks found."

// ParseFormat validates a --format value. Empty selects FormatTable.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", value)
	}
}

// Options tune table rendering.
type Options struct {
	Favorites gallery.Favorites
	// Width is the terminal width; zero means unknown.
	Width int
	Color bool
}

// ForWriter fills Width and Color from w when it is a terminal.
func ForWriter(w io.Writer, favorites gallery.Favorites) Options {
	opts := Options{Favorites: favorites}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts.Color = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			opts.Width = width
		}
	}
	return opts
}

type record struct {
	met.Artwork `yaml:",inline"`
	Favorite    bool `json:"favorite" yaml:"favorite"`
}

func records(items []met.Artwork, favorites gallery.Favorites) []record {
	out := make([]record, 0, len(items))
	for _, it := range items {
		out = append(out, record{Artwork: it, Favorite: favorites.Has(it.ObjectID)})
	}
	return out
}

// Write renders items to w in the given format.
func Write(w io.Writer, format Format, items []met.Artwork, opts Options) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records(items, opts.Favorites)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(items, opts.Favorites)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	case FormatTable, "":
		return writeTable(w, items, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

var columns = []string{"", "ID", "ARTIST", "TITLE", "DATE"}

const titleColumn = 3

func writeTable(w io.Writer, items []met.Artwork, opts Options) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, columns)
	for _, it := range items {
		mark := " "
		if opts.Favorites.Has(it.ObjectID) {
			mark = "*"
		}
		rows = append(rows, []string{
			mark,
			fmt.Sprintf("%d", it.ObjectID),
			orDash(it.ArtistDisplayName),
			orDash(it.Title),
			orDash(it.ObjectDate),
		})
	}

	widths := make([]int, len(columns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	widths[titleColumn] = min(widths[titleColumn], titleLimit(widths, opts.Width))

	header := lipgloss.NewStyle().Bold(true)
	fav := lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	for r, row := range rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			cell = runewidth.Truncate(cell, widths[i], "...")
			if i < len(row)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			if opts.Color {
				switch {
				case r == 0:
					cell = header.Render(cell)
				case i == 0 && strings.TrimSpace(cell) != "":
					cell = fav.Render(cell)
				}
			}
			parts[i] = cell
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// titleLimit fits the title column into width after the other columns.
func titleLimit(widths []int, width int) int {
	if width <= 0 {
		return DefaultTitleWidth
	}
	used := 2 * (len(widths) - 1)
	for i, w := range widths {
		if i != titleColumn {
			used += w
		}
	}
	return max(width-used, 10)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
