package fixture

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/rowview/rowview/result"
)

// Dump renders a result in a stable, line-oriented form for golden
// comparison. Cells are Go-quoted so embedded whitespace survives, and
// NULL is rendered as \N to stay distinct from the quoted empty string.
func Dump(res *result.Result) []byte {
	var buf bytes.Buffer

	buf.WriteString("columns:")
	for c := 0; c < res.NumColumns(); c++ {
		col := res.Column(c)
		fmt.Fprintf(&buf, " %s(%s)", col.Name, result.TypeNameForOID(col.TypeOID))
	}
	buf.WriteByte('\n')

	for r := 0; r < res.Len(); r++ {
		fmt.Fprintf(&buf, "row %d:", r)
		for c := 0; c < res.NumColumns(); c++ {
			f := res.Field(r, c)
			if f.IsNull() {
				buf.WriteString(" \\N")
			} else {
				buf.WriteByte(' ')
				buf.WriteString(strconv.Quote(f.String()))
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// AssertGolden compares a result's dump against the golden file
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/fixture -update
func AssertGolden(t *testing.T, name string, res *result.Result) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Dump(res))
}
