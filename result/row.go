package result

// Row is a handle to one row of a Result. Like Field it carries no data of
// its own; copying is cheap and the zero Row is unbound.
type Row struct {
	home *Result
	row  int
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	r.mustBind()
	return len(r.home.cols)
}

// Index returns the row's position in its result.
func (r Row) Index() int { return r.row }

// Field returns the handle for column c of this row. Panics on an
// out-of-range column or an unbound row.
func (r Row) Field(c int) Field {
	r.mustBind()
	return r.home.Field(r.row, c)
}

// FieldByName returns the handle for the first column whose name matches,
// and whether one was found.
func (r Row) FieldByName(name string) (Field, bool) {
	r.mustBind()
	for c, col := range r.home.cols {
		if col.Name == name {
			return r.home.Field(r.row, c), true
		}
	}
	return Field{}, false
}

// Result returns the owning result.
func (r Row) Result() *Result {
	r.mustBind()
	return r.home
}

func (r Row) mustBind() {
	if r.home == nil {
		panic("result: access through unbound Row")
	}
}
