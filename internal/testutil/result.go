// Package testutil provides compact result construction for tests.
package testutil

import (
	"github.com/rowview/rowview/result"
)

// S returns a pointer to s, for building rows where nil means NULL.
func S(s string) *string { return &s }

// TextResult builds a Result whose columns are all text, from rows of
// *string cells where nil is NULL. Panics on malformed input; tests should
// not have malformed fixtures.
func TextResult(cols []string, rows [][]*string) *result.Result {
	columns := make([]result.Column, len(cols))
	for i, name := range cols {
		columns[i] = result.Column{Name: name, TypeOID: result.OIDText, TableColumn: i}
	}
	return TypedResult(columns, rows)
}

// TypedResult builds a Result with explicit column metadata, from rows of
// *string cells where nil is NULL.
func TypedResult(columns []result.Column, rows [][]*string) *result.Result {
	b := result.NewBuilder(columns...)
	cells := make([]result.Cell, len(columns))
	for _, row := range rows {
		for i, cell := range row {
			if cell == nil {
				cells[i] = result.Null()
			} else {
				cells[i] = result.Text(*cell)
			}
		}
		if err := b.Append(cells...); err != nil {
			panic(err)
		}
	}
	return b.Build()
}

// SingleField builds a one-row, one-column text result and returns its
// only field. Pass nil for a NULL cell.
func SingleField(cell *string) result.Field {
	return TextResult([]string{"v"}, [][]*string{{cell}}).Field(0, 0)
}
