package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MRtecno98/izy/izy/misc"
	"github.com/MRtecno98/izy/izy/paths"
	"github.com/MRtecno98/izy/izy/regex"
	"github.com/dlclark/regexp2"
	"github.com/urfave/cli/v2"
)

var MATCH = &cli.Command{
	Name:    "match",
	Aliases: []string{"m"},
	Usage:   "prints the lines of a file containing any of the given words",
	Before:  Initialize,
	After:   Shutdown,

	Args:      true,
	ArgsUsage: " file word...",

	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "ignore-case", Aliases: []string{"i"}, Usage: "matches regardless of case"},
		&cli.BoolFlag{Name: "mark", Usage: "wraps every match in brackets"},
	},

	Action: command("match", func(c *cli.Context, out io.Writer) error {
		if err := requireArgs(c, 2, "file word..."); err != nil {
			return err
		}

		args := c.Args().Slice()
		words := misc.Unique(args[1:])
		for i, w := range words {
			words[i] = regexp2.Escape(w)
		}

		re, err := regex.Make(regex.Flags{IgnoreCase: c.Bool("ignore-case")},
			regex.Wordbounded(regex.AnyOf(words...)))
		if err != nil {
			return err
		}

		lines, err := paths.NewFile(Fs, args[0]).ReadLines(-1)
		if err != nil {
			return err
		}

		mark := regex.FuncRepl(func(s string) string { return "[" + s + "]" }, "")

		found := 0
		for i, line := range lines {
			line = strings.TrimRight(line, "\r\n")

			ok, err := re.MatchString(line)
			if err != nil {
				return err
			} else if !ok {
				continue
			}

			if c.Bool("mark") {
				if line, err = regex.ReplaceAll(re, line, mark); err != nil {
					return err
				}
			}

			found++
			if _, err := fmt.Fprintf(out, "%d: %s\n", i+1, line); err != nil {
				return err
			}
		}

		Logger.Debug("Matched lines", "file", args[0], "lines", found)
		return nil
	}),
}
