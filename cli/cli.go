// Package cli provides the command line interface for the izy utilities.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/MRtecno98/afero"
	"github.com/MRtecno98/izy/izy"
	"github.com/MRtecno98/izy/izy/decorators"
	"github.com/MRtecno98/izy/izy/misc"
	"github.com/MRtecno98/izy/izy/util"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

// Fs is the file system every command reads from and writes to.
var Fs afero.Fs = afero.NewOsFs()

var Logger *misc.Logger

var GlobalError error
var Time time.Time

var profile afero.File

var Commands = []*cli.Command{
	HEAD, TABLE, RANK, MATCH, FETCH, CONFIG,
}

// Action is the body of a command. Anything it prints goes to out.
type Action func(c *cli.Context, out io.Writer) error

func NewApp() *cli.App {
	return &cli.App{
		Name:  "izy",
		Usage: "inspects, ranks and fetches data files",

		UseShortOptionHandling: true,
		Suggest:                true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"f"},
				Usage:   "selects `FILE` as the configuration file",
				Value:   izy.ConfigName,
			},

			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"v"},
				Usage:       "enables debug mode",
				Value:       izy.DEBUG,
				Destination: &izy.DEBUG,
			},

			&cli.BoolFlag{
				Name:  "profile",
				Usage: "writes a CPU profile to the working directory",
			},
		},

		ExitErrHandler: func(c *cli.Context, err error) {
			if err != nil {
				GlobalError = multierror.Append(GlobalError, err)
			}
		},

		Commands: Commands,
	}
}

func Initialize(c *cli.Context) error {
	Time = time.Now()
	GlobalError = nil

	conf, confErr := izy.LoadSystemConfig(Fs, c.String("config"))

	var err error
	Logger, err = misc.SetupLoggerFs(Fs, c.App.ErrWriter, "izy", conf.Log.File, misc.Append)
	if err != nil {
		log.Print("failed to initialize logger: ", err)
		return err
	}

	if confErr != nil {
		Logger.Warn("Failed to load config, using defaults", "error", confErr)
	}

	if err := Logger.Level.UnmarshalText([]byte(conf.Log.Level)); err != nil {
		Logger.Warn("Unknown log level, using info", "level", conf.Log.Level)
	}

	if izy.DEBUG {
		Logger.Level.Set(slog.LevelDebug)
		izy.PrintConfig(c.App.Writer, conf)
	}

	if c.Bool("profile") {
		name := izy.NewProfileFilename(Fs)
		if profile, err = Fs.Create(name); err != nil {
			return err
		}

		if err := pprof.StartCPUProfile(profile); err != nil {
			return err
		}

		Logger.Debug("Profiling", "file", name)
	}

	return nil
}

func Shutdown(c *cli.Context) error {
	if profile != nil {
		pprof.StopCPUProfile()
		profile.Close()
		profile = nil
	}

	if Logger != nil {
		Logger.Close()
	}

	dur := time.Since(Time).Truncate(time.Millisecond)

	if GlobalError != nil {
		fmt.Fprint(c.App.Writer, GlobalError.Error())
		fmt.Fprintf(c.App.Writer, "FAILURE (took %v)\n", dur)
	} else {
		fmt.Fprintf(c.App.Writer, "SUCCESS (took %v)\n", dur)
	}

	return nil
}

// Run executes action under a ":name" banner and leaves a blank line after
// its output.
func Run(c *cli.Context, name string, action Action) error {
	fmt.Fprintf(c.App.Writer, ":%s\n", name)

	out := util.NewLookbackCountingWriter(c.App.Writer, 2)

	task := decorators.ReturnsTime(decorators.Logs[io.Writer, struct{}](Logger.Logger, name,
		func(ctx context.Context, w io.Writer) (struct{}, error) {
			return struct{}{}, action(c, w)
		}, decorators.Before(decorators.Off)))

	timed, err := task(c.Context, out)

	if out.BytesWritten > 0 {
		for _, v := range slices.Clone(out.LastBytes) {
			if v != '\n' {
				fmt.Fprintln(out)
			}
		}
	}

	if err != nil {
		fmt.Fprintf(out, ":%s FAILED: %s\n\n", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}

	Logger.Debug("Task finished", "task", name, "ms", timed.Millis())
	return nil
}

func command(name string, action Action) cli.ActionFunc {
	return func(c *cli.Context) error {
		return Run(c, name, action)
	}
}

func requireArgs(c *cli.Context, n int, usage string) error {
	if c.Args().Len() < n {
		return cli.Exit("missing arguments: "+usage, 1)
	}

	return nil
}
