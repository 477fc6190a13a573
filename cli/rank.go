package cli

import (
	"fmt"
	"io"

	"github.com/MRtecno98/izy/izy/misc"
	"github.com/MRtecno98/izy/izy/scorer"
	"github.com/urfave/cli/v2"
)

var RANK = &cli.Command{
	Name:    "rank",
	Aliases: []string{"r"},
	Usage:   "ranks candidates by similarity to a query",
	Before:  Initialize,
	After:   Shutdown,

	Args:      true,
	ArgsUsage: " query candidate...",

	Flags: []cli.Flag{
		&cli.IntFlag{Name: "k", Usage: "lists only the best `K` candidates, or the worst when negative"},
	},

	Action: command("rank", func(c *cli.Context, out io.Writer) error {
		if err := requireArgs(c, 2, "query candidate..."); err != nil {
			return err
		}

		args := c.Args().Slice()
		candidates := misc.Unique(args[1:])

		scores := scorer.Similarity(args[0], candidates)
		for _, item := range scores.TopK(c.Int("k")) {
			if _, err := fmt.Fprintf(out, "%s: %.3f\n", item.Key, item.Score); err != nil {
				return err
			}
		}

		return nil
	}),
}
