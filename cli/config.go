package cli

import (
	"io"

	"github.com/MRtecno98/izy/izy"
	"github.com/urfave/cli/v2"
)

var CONFIG = &cli.Command{
	Name:   "config",
	Usage:  "prints the active configuration",
	Before: Initialize,
	After:  Shutdown,
	Action: command("config", func(c *cli.Context, out io.Writer) error {
		izy.PrintConfig(out, izy.GlobalConfig)
		return nil
	}),
}
