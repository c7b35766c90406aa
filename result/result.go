package result

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Column describes one column of a result.
type Column struct {
	// Name is the column label from the query.
	Name string

	// TypeOID is the declared type of the column (PostgreSQL OID numbering,
	// see oid.go). Zero when the source did not report one.
	TypeOID uint32

	// TableOID identifies the source table, when known.
	TableOID uint32

	// TableColumn is the column's ordinal in its source table, when known.
	TableColumn int
}

// span locates one cell inside the arena. A null cell has a zero-length
// span and the flag set; a present empty string has only the zero-length
// span.
type span struct {
	off  int
	end  int
	null bool
}

// Result is the owner of a query result's decoded textual cells.
//
// All cell text lives in a single arena; fields expose aliasing subslices
// of it. A Result is immutable after Build and is shared by reference:
// every Row and Field holds the same *Result, and the garbage collector
// keeps the arena alive until the last handle goes away.
type Result struct {
	cols  []Column
	buf   []byte
	cells []span
	nrows int
	enc   encoding.Encoding
}

// Len returns the number of rows.
func (r *Result) Len() int { return r.nrows }

// NumColumns returns the number of columns.
func (r *Result) NumColumns() int { return len(r.cols) }

// Column returns the metadata for column c.
func (r *Result) Column(c int) Column { return r.cols[c] }

// Columns returns the column metadata in order. The returned slice is a
// copy and may be modified by the caller.
func (r *Result) Columns() []Column {
	out := make([]Column, len(r.cols))
	copy(out, r.cols)
	return out
}

// Encoding returns the text-encoding context cells were decoded under.
func (r *Result) Encoding() encoding.Encoding { return r.enc }

// Row returns a handle for row i. Panics if i is out of range.
func (r *Result) Row(i int) Row {
	if i < 0 || i >= r.nrows {
		panic(fmt.Sprintf("result: row %d out of range [0,%d)", i, r.nrows))
	}
	return Row{home: r, row: i}
}

// Field returns a handle for the cell at (row, col). Panics on an
// out-of-range index.
func (r *Result) Field(row, col int) Field {
	if row < 0 || row >= r.nrows {
		panic(fmt.Sprintf("result: row %d out of range [0,%d)", row, r.nrows))
	}
	if col < 0 || col >= len(r.cols) {
		panic(fmt.Sprintf("result: column %d out of range [0,%d)", col, len(r.cols)))
	}
	return Field{home: r, row: row, col: col}
}

func (r *Result) cell(row, col int) span {
	return r.cells[row*len(r.cols)+col]
}

func (r *Result) view(s span) []byte {
	return r.buf[s.off:s.end:s.end]
}

// Cell is one input cell for a Builder: its text and whether it is NULL.
// The text of a null cell is ignored.
type Cell struct {
	Text string
	Null bool
}

// Text makes a present cell.
func Text(s string) Cell { return Cell{Text: s} }

// Null makes a NULL cell.
func Null() Cell { return Cell{Null: true} }

// Builder accumulates rows for a Result. It is the one place cell bytes
// are copied; everything downstream views the arena it builds. A Builder
// is not safe for concurrent use and must not be reused after Build.
type Builder struct {
	res  *Result
	done bool
}

// NewBuilder starts a result with the given columns.
func NewBuilder(cols ...Column) *Builder {
	c := make([]Column, len(cols))
	copy(c, cols)
	return &Builder{res: &Result{cols: c, enc: unicode.UTF8}}
}

// SetEncoding records the text-encoding context for the result. The
// default is UTF-8. The encoding is carried to array parsing; cell bytes
// are stored verbatim either way.
func (b *Builder) SetEncoding(enc encoding.Encoding) {
	b.res.enc = enc
}

// Append adds one row. The number of cells must match the column count.
func (b *Builder) Append(cells ...Cell) error {
	if b.done {
		return fmt.Errorf("result: Append after Build")
	}
	r := b.res
	if len(cells) != len(r.cols) {
		return fmt.Errorf("result: row has %d cells, want %d", len(cells), len(r.cols))
	}
	for _, c := range cells {
		off := len(r.buf)
		if !c.Null {
			r.buf = append(r.buf, c.Text...)
		}
		r.cells = append(r.cells, span{off: off, end: len(r.buf), null: c.Null})
	}
	r.nrows++
	return nil
}

// Build finalizes and returns the Result. The Builder must not be used
// afterwards.
func (b *Builder) Build() *Result {
	b.done = true
	return b.res
}
