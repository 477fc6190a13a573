package cli

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/MRtecno98/izy/izy"
	"github.com/MRtecno98/izy/izy/paths"
	"github.com/MRtecno98/izy/izy/sorting"
	"github.com/MRtecno98/izy/izy/table"
	"github.com/urfave/cli/v2"
)

var TABLE = &cli.Command{
	Name:    "table",
	Aliases: []string{"t"},
	Usage:   "previews a CSV file as a table",
	Before:  Initialize,
	After:   Shutdown,

	Args:      true,
	ArgsUsage: " file",

	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sep", Aliases: []string{"s"}, Usage: "splits fields on `CHAR`"},
		&cli.IntFlag{Name: "rows", Aliases: []string{"n"}, Usage: "draws the first `N` rows, all of them when N is 0"},
		&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "cuts cells longer than `N` in the plain style"},
		&cli.StringSliceFlag{Name: "columns", Aliases: []string{"c"}, Usage: "keeps only the `COLUMNS` listed"},
		&cli.StringFlag{Name: "style", Usage: "draws with `STYLE`, one of plain, default, light, rounded, bold, double"},
		&cli.StringFlag{Name: "sort", Usage: "orders rows by `COLUMN`"},
		&cli.BoolFlag{Name: "desc", Usage: "sorts in descending order"},
		&cli.StringFlag{Name: "sqlite", Usage: "also stores the table in the SQLite database `FILE`"},
	},

	Action: command("table", func(c *cli.Context, out io.Writer) error {
		if err := requireArgs(c, 1, "file"); err != nil {
			return err
		}

		conf := izy.GlobalConfig.Table
		sep := conf.Separator
		if c.IsSet("sep") {
			sep = c.String("sep")
		}

		if utf8.RuneCountInString(sep) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", sep)
		}

		sepRune, _ := utf8.DecodeRuneInString(sep)

		file := paths.NewFile(Fs, c.Args().First())
		t, err := file.ReadCSV(table.CSVOptions{Sep: sepRune, Transform: parseNumber})
		if err != nil {
			return err
		}

		if cols := c.StringSlice("columns"); len(cols) > 0 {
			if t, err = t.Select(cols...); err != nil {
				return err
			}
		}

		if col := c.String("sort"); col != "" {
			if t, err = sortTable(t, col, c.Bool("desc")); err != nil {
				return err
			}
		}

		if db := c.String("sqlite"); db != "" {
			if err := storeTable(c, t, db, file.Stem()); err != nil {
				return err
			}
		}

		rows, style, width := conf.Rows, conf.Style, conf.MaxColWidth
		if c.IsSet("rows") {
			rows = c.Int("rows")
		}

		if c.IsSet("style") {
			style = c.String("style")
		}

		if c.IsSet("width") {
			width = c.Int("width")
		}

		if style == "plain" {
			_, err := fmt.Fprintln(out, t.DrawWidth(rows, width))
			return err
		}

		s, err := t.Render(style, rows)
		if err != nil {
			return err
		}

		_, err = io.WriteString(out, s)
		return err
	}),
}

// parseNumber reads numeric fields as float64 and leaves the rest as text.
func parseNumber(s string) (any, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}

	return s, nil
}

// sortTable orders the rows of t by a column, numerically when every cell is
// a number and as text otherwise.
func sortTable(t *table.Table, name string, desc bool) (*table.Table, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	var idx []int
	if nums, ok := numbers(col); ok {
		idx = sorting.Argsort(nums, desc)
	} else {
		text := make([]string, len(col))
		for i, v := range col {
			if v != nil {
				text[i] = fmt.Sprint(v)
			}
		}

		idx = sorting.Argsort(text, desc)
	}

	names := t.Columns()
	cols := make([][]any, len(names))
	for i, n := range names {
		values, _ := t.Column(n)
		cols[i] = sorting.Reorder(values, idx)
	}

	return table.FromColumns(names, cols)
}

func numbers(col []any) ([]float64, bool) {
	nums := make([]float64, len(col))
	for i, v := range col {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}

		nums[i] = f
	}

	return nums, true
}

func storeTable(c *cli.Context, t *table.Table, file, name string) error {
	db, err := table.OpenSQLite(Fs, file)
	if err != nil {
		return err
	}

	defer db.Close()

	if err := t.WriteSQL(c.Context, db, name); err != nil {
		return err
	}

	Logger.Info("Stored table", "database", file, "table", name, "rows", t.Len())
	return nil
}
