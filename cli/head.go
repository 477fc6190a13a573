package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MRtecno98/izy/izy"
	"github.com/MRtecno98/izy/izy/decorators"
	"github.com/MRtecno98/izy/izy/discovery"
	"github.com/MRtecno98/izy/izy/paths"
	"github.com/urfave/cli/v2"
)

func loadJSON(_ context.Context, f paths.FilePath) (any, error) {
	var v any
	err := f.LoadJSON(&v)
	return v, err
}

func loadYAML(_ context.Context, f paths.FilePath) (any, error) {
	var v any
	err := f.LoadYAML(&v)
	return v, err
}

// loadDocument reads a JSON file, or a YAML one when the file does not parse
// as JSON.
var loadDocument = decorators.FallsBack[paths.FilePath, any](loadJSON, nil, loadYAML)

var HEAD = &cli.Command{
	Name:    "head",
	Aliases: []string{"hd"},
	Usage:   "pretty-prints the head of a JSON or YAML document",
	Before:  Initialize,
	After:   Shutdown,

	Args:      true,
	ArgsUsage: " file",

	Flags: []cli.Flag{
		&cli.IntFlag{Name: "n", Usage: "keeps the first `N` items of every collection"},
		&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "wraps lines longer than `COLS`"},
		&cli.IntFlag{Name: "indent", Usage: "indents nested items by `N` spaces"},
		&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Usage: "elides collections nested deeper than `N`"},
		&cli.BoolFlag{Name: "go", Usage: "prints Go syntax instead"},
	},

	Action: command("head", func(c *cli.Context, out io.Writer) error {
		if err := requireArgs(c, 1, "file"); err != nil {
			return err
		}

		doc, err := loadDocument(c.Context, paths.NewFile(Fs, c.Args().First()))
		if err != nil {
			return err
		}

		opts := headOptions(c, izy.GlobalConfig.Head)

		if c.Bool("go") {
			_, err := fmt.Fprintln(out, discovery.GoFormat(doc, opts.N))
			return err
		}

		return discovery.HPrint(out, doc, opts)
	}),
}

func headOptions(c *cli.Context, conf izy.HeadConfig) discovery.Options {
	opts := discovery.Options{N: conf.N, Width: conf.Width, Indent: conf.Indent, Depth: conf.Depth}

	if c.IsSet("n") {
		opts.N = c.Int("n")
	}

	if c.IsSet("width") {
		opts.Width = c.Int("width")
	}

	if c.IsSet("indent") {
		opts.Indent = c.Int("indent")
	}

	if c.IsSet("depth") {
		opts.Depth = c.Int("depth")
	}

	return opts
}
