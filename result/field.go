package result

import (
	"bytes"
	"io"
)

// Field is a handle to one cell of a Result: the owning result plus a row
// and column index. Copying a Field copies the shared reference and two
// integers; the cell bytes are never copied.
//
// The zero Field is unbound. Assigning and comparing unbound fields is
// fine; any content accessor panics, since there is no cell to read.
type Field struct {
	home *Result
	row  int
	col  int
}

// Bound reports whether the field refers to a cell.
func (f Field) Bound() bool { return f.home != nil }

// View returns the cell's byte span without copying. The slice aliases the
// result's storage: it stays valid while the Result is reachable and must
// not be modified. A NULL cell and an empty string both yield a
// zero-length view; IsNull tells them apart.
func (f Field) View() []byte {
	f.mustBind()
	return f.home.view(f.home.cell(f.row, f.col))
}

// IsNull reports whether the store recorded this cell as SQL NULL.
// Independent of the view's length.
func (f Field) IsNull() bool {
	f.mustBind()
	return f.home.cell(f.row, f.col).null
}

// Len returns the byte length of the cell's text: 0 for both NULL and the
// empty string.
func (f Field) Len() int {
	f.mustBind()
	s := f.home.cell(f.row, f.col)
	return s.end - s.off
}

// Name returns the column name.
func (f Field) Name() string {
	f.mustBind()
	return f.home.cols[f.col].Name
}

// TypeOID returns the declared type of the column.
func (f Field) TypeOID() uint32 {
	f.mustBind()
	return f.home.cols[f.col].TypeOID
}

// TableOID returns the source table of the column, when known.
func (f Field) TableOID() uint32 {
	f.mustBind()
	return f.home.cols[f.col].TableOID
}

// TableColumn returns the column's ordinal in its source table.
func (f Field) TableColumn() int {
	f.mustBind()
	return f.home.cols[f.col].TableColumn
}

// Row returns the field's row index; Column its column index.
func (f Field) Row() int    { return f.row }
func (f Field) Column() int { return f.col }

// Equal compares two fields byte for byte, with all NULLs considered
// equal to each other.
//
// This deviates from SQL three-valued logic, where a comparison involving
// NULL is never true; treating NULL cells as equal is what cell-identity
// comparison needs. No interpretation is imposed on the bytes: "0" and
// "0.0" differ, as do NULL and the empty string, and distinct encodings of
// an equivalent value.
//
// Two unbound fields compare equal; an unbound field never equals a bound
// one.
func (f Field) Equal(g Field) bool {
	if f.home == nil || g.home == nil {
		return f.home == nil && g.home == nil
	}
	fn, gn := f.IsNull(), g.IsNull()
	if fn || gn {
		return fn && gn
	}
	return bytes.Equal(f.View(), g.View())
}

// String returns a copy of the cell text, or the empty string for NULL.
// Implements fmt.Stringer; use View for zero-copy access.
func (f Field) String() string {
	f.mustBind()
	return string(f.View())
}

// WriteTo writes the cell's bytes verbatim to w. Content-agnostic: no
// re-encoding, no quoting, nothing written for NULL.
func (f Field) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.View())
	return int64(n), err
}

func (f Field) mustBind() {
	if f.home == nil {
		panic("result: content access through unbound Field")
	}
}
