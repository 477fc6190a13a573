package table

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	MaxColWidth = 16
	DrawRows    = 5
)

var styles = map[string]table.Style{
	"default": table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"bold":    table.StyleBold,
	"double":  table.StyleDouble,
}

func cell(v any) string {
	if v == nil {
		return "None"
	}

	return fmt.Sprint(v)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}

// Draw renders the first n rows as plain text with MaxColWidth wide columns.
func (t *Table) Draw(n int) string {
	return t.DrawWidth(n, MaxColWidth)
}

// DrawWidth renders the first n rows as plain text, or all of them when n is
// not positive. Each column is as wide as its longest shown cell plus three,
// up to maxWidth; longer cells are cut and end with "..".
func (t *Table) DrawWidth(n, maxWidth int) string {
	if n <= 0 {
		n = t.Len()
	}
	n = min(n, t.Len())

	widths := make([]int, len(t.names))
	total := 0
	for i, name := range t.names {
		longest := utf8.RuneCountInString(name)
		for _, v := range t.cols[name][:n] {
			longest = max(longest, utf8.RuneCountInString(cell(v)))
		}

		widths[i] = min(longest+3, maxWidth)
		total += widths[i]
	}

	var sb strings.Builder
	for i, name := range t.names {
		sb.WriteString(pad(name, widths[i]))
	}
	sb.WriteString("\n" + strings.Repeat("=", total) + "\n")

	for r := 0; r < n; r++ {
		for i, name := range t.names {
			s := cell(t.cols[name][r])
			if utf8.RuneCountInString(s) > widths[i]-1 {
				s = string([]rune(s)[:max(widths[i]-3, 0)]) + ".."
			}

			sb.WriteString(pad(s, widths[i]))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func (t *Table) String() string {
	return t.Draw(DrawRows)
}

// Render draws the first n rows, or all of them when n is not positive, in
// one of the named styles. "plain" is the Draw layout, the others are boxed.
func (t *Table) Render(style string, n int) (string, error) {
	if n <= 0 {
		n = t.Len()
	}

	if style == "plain" {
		return t.Draw(n) + "\n", nil
	}

	s, ok := styles[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	var buf bytes.Buffer
	w := table.NewWriter()
	w.SetOutputMirror(&buf)

	header := make(table.Row, len(t.names))
	for i, name := range t.names {
		header[i] = name
	}
	w.AppendHeader(header)

	for r := 0; r < min(n, t.Len()); r++ {
		row := make(table.Row, len(t.names))
		for i, name := range t.names {
			row[i] = cell(t.cols[name][r])
		}
		w.AppendRow(row)
	}

	w.SetStyle(s)
	w.Render()

	return buf.String(), nil
}

func Styles() []string {
	return []string{"plain", "default", "light", "rounded", "bold", "double"}
}
