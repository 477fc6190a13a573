package table

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MRtecno98/afero"
	"github.com/MRtecno98/afero/sqlitevfs"
	_ "github.com/mattn/go-sqlite3"
)

var vfsCount atomic.Int64

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// OpenSQLite opens the SQLite database file stored on fs.
func OpenSQLite(fs afero.Fs, file string) (*sql.DB, error) {
	vfs := fmt.Sprintf("izy-%d", vfsCount.Add(1))
	sqlitevfs.RegisterVFS(vfs, afero.Afero{Fs: fs})

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?vfs=%s", file, vfs))
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sql: %w", err)
	}

	return db, nil
}

// WriteSQL stores the rows of t in the named SQL table, creating it with
// untyped columns when needed. All rows are inserted in one transaction.
func (t *Table) WriteSQL(ctx context.Context, db *sql.DB, name string) error {
	if len(t.names) == 0 {
		return nil
	}

	cols := make([]string, len(t.names))
	marks := make([]string, len(t.names))
	for i, n := range t.names {
		cols[i] = quote(n)
		marks[i] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quote(name), strings.Join(cols, ", "))); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(name), strings.Join(cols, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return err
	}

	defer stmt.Close()

	args := make([]any, len(t.names))
	for r := 0; r < t.Len(); r++ {
		for i, n := range t.names {
			args[i] = t.cols[n][r]
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("db save (no data was modified): %w", err)
		}
	}

	return tx.Commit()
}

// ReadSQL runs query and collects the result into a table. Text and blob
// values both come back as strings.
func ReadSQL(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := New()
	for _, n := range names {
		if t.HasColumn(n) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, n)
		}

		t.SetColumn(n, []any{})
	}

	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(names))
		for i, n := range names {
			if b, ok := values[i].([]byte); ok {
				row[n] = string(b)
			} else {
				row[n] = values[i]
			}
		}

		t.Append(row)
	}

	return t, rows.Err()
}
