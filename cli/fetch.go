package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/MRtecno98/izy/izy"
	"github.com/MRtecno98/izy/izy/paths"
	"github.com/urfave/cli/v2"
)

var FETCH = &cli.Command{
	Name:    "fetch",
	Aliases: []string{"f"},
	Usage:   "downloads a URL to a file",
	Before:  Initialize,
	After:   Shutdown,

	Args:      true,
	ArgsUsage: " url file",

	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sha256", Usage: "verifies the download against the hex `SUM`"},
	},

	Action: command("fetch", func(c *cli.Context, out io.Writer) error {
		if err := requireArgs(c, 2, "url file"); err != nil {
			return err
		}

		conf := izy.GlobalConfig.Fetch
		timeout, err := time.ParseDuration(conf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid fetch timeout %q: %w", conf.Timeout, err)
		}

		url, dest := c.Args().Get(0), c.Args().Get(1)
		client := paths.NewClient(conf.UserAgent, timeout)

		f := paths.NewFile(Fs, dest).Mkdir().Fetch(c.Context, client, url, c.String("sha256"))
		if err := f.Err(); err != nil {
			return err
		}

		size, err := f.Size(false)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Downloaded %s (%d bytes)\n", f, size)
		return err
	}),
}
