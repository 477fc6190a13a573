package discovery

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kr/pretty"
)

type Options struct {
	// N is the number of items kept per collection.
	N int
	// Width is the line width a collection must fit to stay on one line.
	Width int
	// Indent is the number of spaces added per nesting level.
	Indent int
	// Depth limits nesting, zero means unlimited.
	Depth int
}

func DefaultOptions() Options {
	return Options{N: 3, Width: 80, Indent: 2}
}

func (o Options) orDefault() Options {
	d := DefaultOptions()
	if o.N <= 0 {
		o.N = d.N
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Indent <= 0 {
		o.Indent = d.Indent
	}

	return o
}

// PFormat pretty-formats the head of x. Collections that do not fit the line
// width are split one item per line.
func PFormat(x any, opts Options) string {
	opts = opts.orDefault()

	p := printer{opts: opts}
	p.format(Head(x, opts.N, true), 0, 0, 0)

	return p.String()
}

// HPrint writes the PFormat output of x and a newline to w.
func HPrint(w io.Writer, x any, opts Options) error {
	_, err := fmt.Fprintln(w, PFormat(x, opts))
	return err
}

// Sprint formats x on a single line, without truncating it.
func Sprint(x any) string {
	p := printer{}
	return p.repr(x, 0)
}

// GoFormat renders the head of x as Go syntax.
func GoFormat(x any, n int) string {
	return fmt.Sprintf("%# v", pretty.Formatter(Head(x, n, true)))
}

type printer struct {
	strings.Builder
	opts Options
}

func (p *printer) repr(x any, level int) string {
	limited := p.opts.Depth > 0 && level >= p.opts.Depth

	switch v := x.(type) {
	case nil:
		return "nil"

	case Etc:
		return v.String()

	case string:
		return strconv.Quote(v)

	case []any:
		if limited {
			return "[...]"
		}
		return "[" + p.join(v, level+1) + "]"

	case Tuple:
		if limited {
			return "(...)"
		}
		if len(v) == 1 {
			return "(" + p.repr(v[0], level+1) + ",)"
		}
		return "(" + p.join(v, level+1) + ")"

	case Map:
		if limited {
			return "{...}"
		}

		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = p.repr(e.Key, level+1) + ": " + p.repr(e.Value, level+1)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprint(x)
}

func (p *printer) join(items []any, level int) string {
	parts := make([]string, len(items))
	for i, x := range items {
		parts[i] = p.repr(x, level)
	}

	return strings.Join(parts, ", ")
}

// format writes x starting at column indent, keeping allowance columns free
// at the end of the last line for closing brackets.
func (p *printer) format(x any, indent, allowance, level int) {
	rep := p.repr(x, level)
	if utf8.RuneCountInString(rep) <= p.opts.Width-indent-allowance {
		p.WriteString(rep)
		return
	}

	switch v := x.(type) {
	case []any:
		p.WriteString("[")
		p.formatItems(v, indent, allowance+1, level+1)
		p.WriteString("]")

	case Tuple:
		end := ")"
		if len(v) == 1 {
			end = ",)"
		}

		p.WriteString("(")
		p.formatItems(v, indent, allowance+len(end), level+1)
		p.WriteString(end)

	case Map:
		p.WriteString("{")
		p.formatEntries(v, indent, allowance+1, level+1)
		p.WriteString("}")

	default:
		p.WriteString(rep)
	}
}

func (p *printer) formatItems(items []any, indent, allowance, level int) {
	indent += p.opts.Indent
	p.WriteString(strings.Repeat(" ", p.opts.Indent-1))

	for i, x := range items {
		last := i == len(items)-1
		if i > 0 {
			p.WriteString(",\n" + strings.Repeat(" ", indent))
		}

		if last {
			p.format(x, indent, allowance, level)
		} else {
			p.format(x, indent, 1, level)
		}
	}
}

func (p *printer) formatEntries(entries Map, indent, allowance, level int) {
	indent += p.opts.Indent
	p.WriteString(strings.Repeat(" ", p.opts.Indent-1))

	for i, e := range entries {
		last := i == len(entries)-1
		if i > 0 {
			p.WriteString(",\n" + strings.Repeat(" ", indent))
		}

		key := p.repr(e.Key, level)
		p.WriteString(key + ": ")

		col := indent + utf8.RuneCountInString(key) + 2
		if last {
			p.format(e.Value, col, allowance, level)
		} else {
			p.format(e.Value, col, 1, level)
		}
	}
}
