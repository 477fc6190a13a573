package izy

import (
	"fmt"
	"io"
)

const USER_AGENT = "izy/0.1 (MRtecno98/izy)"

var DEBUG = false

func PrintConfig(w io.Writer, c *Config) {
	fmt.Fprintln(w, "Active configuration: ")
	fmt.Fprintf(w, "\tTable:\n")
	fmt.Fprintf(w, "\t\tMax column width: %d\n", c.Table.MaxColWidth)
	fmt.Fprintf(w, "\t\tPreview rows: %d\n", c.Table.Rows)
	fmt.Fprintf(w, "\t\tSeparator: %q\n", c.Table.Separator)
	fmt.Fprintf(w, "\t\tStyle: %s\n", c.Table.Style)
	fmt.Fprintf(w, "\tHead: n=%d width=%d indent=%d depth=%d\n",
		c.Head.N, c.Head.Width, c.Head.Indent, c.Head.Depth)
	fmt.Fprintf(w, "\tLog: level=%s file=%q\n", c.Log.Level, c.Log.File)
	fmt.Fprintf(w, "\tFetch: agent=%q timeout=%s\n", c.Fetch.UserAgent, c.Fetch.Timeout)
	fmt.Fprintln(w)
}
