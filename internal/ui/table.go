package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Column defines one column of a submission or winner listing. Numeric
// columns (vote counts, payouts) set Right for right alignment.
type Column struct {
	Title string
	Width int
	Right bool
}

// Row is a slice of cell values.
type Row []string

// Table renders contest listings. Cursor selects the highlighted row; -1
// renders a plain listing with no selection gutter (wallet list, winners
// in --plain mode).
type Table struct {
	Columns []Column
	Rows    []Row
	Cursor  int
}

// NewTable creates an empty table with no row selected.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, Cursor: -1}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// fit sizes s to exactly width cells. Theme strings and track URLs come
// from user input and can hold multi-byte runes, so sizing counts runes,
// not bytes, and overflow is marked with an ellipsis.
func fit(s string, width int, right bool) string {
	runes := []rune(s)
	if len(runes) > width {
		if width < 1 {
			return ""
		}
		return string(runes[:width-1]) + "…"
	}
	gap := strings.Repeat(" ", width-len(runes))
	if right {
		return gap + s
	}
	return s + gap
}

// Render returns the full table as a string. Cells are sized with fit so
// lipgloss never re-wraps an over-wide cell.
func (t *Table) Render() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)

	gutter := t.Cursor >= 0
	indent := ""
	if gutter {
		indent = "  "
	}

	var headers []string
	for _, col := range t.Columns {
		headers = append(headers, headerStyle.Render(fit(col.Title, col.Width, col.Right)))
	}
	sb.WriteString(indent + strings.Join(headers, " "))
	sb.WriteString("\n")

	var divParts []string
	for _, col := range t.Columns {
		divParts = append(divParts, StyleMeta.Render(strings.Repeat("─", col.Width)))
	}
	sb.WriteString(indent + strings.Join(divParts, " "))
	sb.WriteString("\n")

	for i, row := range t.Rows {
		var cells []string
		for j, col := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			if i == t.Cursor {
				cells = append(cells, StyleSelected.Render(fit(val, col.Width, col.Right)))
			} else {
				cells = append(cells, cellStyle.Render(fit(val, col.Width, col.Right)))
			}
		}
		line := strings.Join(cells, " ")
		if gutter {
			if i == t.Cursor {
				line = StyleTheme.Render("▸ ") + line
			} else {
				line = "  " + line
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// KeyValueBlock renders labeled round facts in a bordered box. The label
// column is sized to the longest label so blocks stay compact.
func KeyValueBlock(title string, pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		if n := utf8.RuneCountInString(p[0]); n > keyWidth {
			keyWidth = n
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fit(p[0]+":", keyWidth+1, false))
		val := StyleValue.Render(p[1])
		sb.WriteString("  " + key + " " + val + "\n")
	}
	return StyleBorder.Render(sb.String())
}
