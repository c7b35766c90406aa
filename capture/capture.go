// Package capture is the query-executor collaborator: it runs SQL through
// database/sql and materializes each result as an immutable result.Result
// of textual cells. Network transport and statement execution stay on this
// side of the boundary; the result and value packages never see them.
package capture

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rowview/rowview/result"
)

// DB wraps a SQLite database handle configured for read-mostly capture.
type DB struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
//
// The connection is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Exec runs a statement that returns no rows, for setting up data the
// capture queries will read.
func (d *DB) Exec(ctx context.Context, query string, args ...any) error {
	_, err := d.db.ExecContext(ctx, query, args...)
	return err
}

// Capture executes the query and captures every row as text.
//
// Each cell is read through sql.RawBytes so the driver's textual form is
// copied once, into the result's arena. NULL cells are recorded in the
// null flags, distinct from empty strings. Declared column types are
// mapped to PostgreSQL OID numbering via result.OIDForTypeName.
func (d *DB) Capture(ctx context.Context, query string, args ...any) (res *result.Result, err error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("capture: query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("capture: column types: %w", err)
	}

	cols := make([]result.Column, len(types))
	for i, ct := range types {
		cols[i] = result.Column{
			Name:        ct.Name(),
			TypeOID:     oidForDeclaredType(ct.DatabaseTypeName()),
			TableColumn: i,
		}
	}
	b := result.NewBuilder(cols...)

	raw := make([]sql.RawBytes, len(cols))
	dests := make([]any, len(cols))
	for i := range raw {
		dests[i] = &raw[i]
	}
	cells := make([]result.Cell, len(cols))

	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("capture: scan: %w", err)
		}
		for i, rb := range raw {
			if rb == nil {
				cells[i] = result.Null()
			} else {
				cells[i] = result.Text(string(rb))
			}
		}
		if err := b.Append(cells...); err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("capture: rows: %w", err)
	}
	return b.Build(), nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// oidForDeclaredType maps a SQLite declared type (possibly with a length
// suffix, e.g. VARCHAR(20)) to a PostgreSQL OID.
func oidForDeclaredType(decl string) uint32 {
	name := strings.ToLower(decl)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	switch name {
	case "integer":
		// SQLite integers are 64-bit.
		return result.OIDInt8
	case "real", "float":
		return result.OIDFloat8
	case "blob":
		return result.OIDBytea
	case "datetime":
		return result.OIDTimestamp
	}
	return result.OIDForTypeName(name)
}
