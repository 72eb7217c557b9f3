package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/charmbracelet/lipgloss"
)

var toneColors = map[resource.Tone]lipgloss.Color{
	resource.TonePurple: lipgloss.Color("99"),
	resource.ToneBlue:   lipgloss.Color("33"),
	resource.ToneGreen:  lipgloss.Color("34"),
	resource.ToneRed:    lipgloss.Color("160"),
	resource.ToneYellow: lipgloss.Color("178"),
	resource.ToneOrange: lipgloss.Color("208"),
	resource.ToneGray:   lipgloss.Color("245"),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// badge renders label in its tone's colour.
func badge(tone resource.Tone, label string) string {
	color, ok := toneColors[tone]
	if !ok {
		color = toneColors[resource.ToneGray]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(label)
}

// table is a plain column-aligned table.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) render(w io.Writer) {
	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// Padding counts towards the width
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.headers)-1 {
			sb.WriteString(mutedStyle.Render("|"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", max(total, 0))))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(cellStyle.Width(widths[i]).Render(cell))
			if i < len(row)-1 && i < len(widths)-1 {
				sb.WriteString(mutedStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(w, sb.String())
}

// pageFooter reports where a list screen stands.
func pageFooter[T any](w io.Writer, v resource.ListView[T]) {
	nav := []string{fmt.Sprintf("Page %d/%d", v.Page, v.TotalPages)}
	if v.CanPrev {
		nav = append(nav, fmt.Sprintf("--page %d for previous", v.Page-1))
	}
	if v.CanNext {
		nav = append(nav, fmt.Sprintf("--page %d for next", v.Page+1))
	}
	fmt.Fprintln(w, mutedStyle.Render(strings.Join(nav, "  ")))

	if v.DeleteErr != nil {
		fmt.Fprintln(w, errorStyle.Render(v.DeleteErr.Error()))
	}
}
