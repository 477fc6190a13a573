package misc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MRtecno98/afero"
)

type Mode string

const (
	Truncate Mode = "w"
	Append   Mode = "a"
)

// Logger is a slog.Logger writing to stdout and optionally to a file.
type Logger struct {
	*slog.Logger

	Level *slog.LevelVar
	file  io.Closer
}

// SetupLogger builds a text logger tagged with name. When file is not empty
// records are also written there, truncating or appending depending on mode.
func SetupLogger(name, file string, mode Mode) (*Logger, error) {
	return SetupLoggerFs(afero.NewOsFs(), os.Stdout, name, file, mode)
}

func SetupLoggerFs(fs afero.Fs, stdout io.Writer, name, file string, mode Mode) (*Logger, error) {
	l := &Logger{Level: new(slog.LevelVar)}

	var out io.Writer = stdout
	if file != "" {
		flags := os.O_CREATE | os.O_WRONLY
		switch mode {
		case Append:
			flags |= os.O_APPEND
		case Truncate, "":
			flags |= os.O_TRUNC
		default:
			return nil, fmt.Errorf("misc: unknown log file mode %q", mode)
		}

		f, err := fs.OpenFile(file, flags, 0644)
		if err != nil {
			return nil, err
		}

		l.file = f
		out = io.MultiWriter(stdout, f)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: l.Level})
	l.Logger = slog.New(handler)
	if name != "" {
		l.Logger = l.Logger.With("logger", name)
	}

	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}
