package result_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowview/rowview/internal/testutil"
	"github.com/rowview/rowview/result"
)

func sampleResult() *result.Result {
	return testutil.TypedResult(
		[]result.Column{
			{Name: "id", TypeOID: result.OIDInt8, TableOID: 4001, TableColumn: 0},
			{Name: "name", TypeOID: result.OIDText, TableOID: 4001, TableColumn: 1},
			{Name: "note", TypeOID: result.OIDText, TableOID: 4001, TableColumn: 2},
		},
		[][]*string{
			{testutil.S("1"), testutil.S("alice"), nil},
			{testutil.S("2"), testutil.S(""), testutil.S("x")},
		},
	)
}

func TestFieldView(t *testing.T) {
	res := sampleResult()
	f := res.Field(0, 1)
	assert.Equal(t, []byte("alice"), f.View())
	assert.Equal(t, 5, f.Len())
	assert.False(t, f.IsNull())
}

func TestFieldViewIdempotent(t *testing.T) {
	f := sampleResult().Field(0, 0)
	first := f.View()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, f.View())
		assert.Equal(t, 1, f.Len())
	}
}

func TestFieldNullVersusEmpty(t *testing.T) {
	res := sampleResult()

	null := res.Field(0, 2)
	assert.True(t, null.IsNull())
	assert.Equal(t, 0, null.Len())
	assert.Len(t, null.View(), 0)

	empty := res.Field(1, 1)
	assert.False(t, empty.IsNull())
	assert.Equal(t, 0, empty.Len())
	assert.Len(t, empty.View(), 0)

	// Same zero-length view, different states.
	assert.False(t, null.Equal(empty))
}

func TestFieldMetadata(t *testing.T) {
	f := sampleResult().Field(1, 1)
	assert.Equal(t, "name", f.Name())
	assert.Equal(t, result.OIDText, f.TypeOID())
	assert.Equal(t, uint32(4001), f.TableOID())
	assert.Equal(t, 1, f.TableColumn())
	assert.Equal(t, 1, f.Row())
	assert.Equal(t, 1, f.Column())
}

func TestFieldEqual(t *testing.T) {
	res := testutil.TextResult(
		[]string{"a", "b", "c", "d"},
		[][]*string{
			{testutil.S("0"), testutil.S("0"), testutil.S("0.0"), nil},
			{nil, testutil.S(""), testutil.S("0"), nil},
		},
	)

	// Same bytes, different cells.
	assert.True(t, res.Field(0, 0).Equal(res.Field(0, 1)))
	assert.True(t, res.Field(0, 0).Equal(res.Field(1, 2)))

	// No semantic interpretation: "0" != "0.0".
	assert.False(t, res.Field(0, 0).Equal(res.Field(0, 2)))

	// NULL equals NULL, deviating from SQL three-valued logic.
	assert.True(t, res.Field(0, 3).Equal(res.Field(1, 0)))
	assert.True(t, res.Field(0, 3).Equal(res.Field(1, 3)))

	// NULL differs from the empty string.
	assert.False(t, res.Field(1, 0).Equal(res.Field(1, 1)))
}

func TestFieldEqualUnbound(t *testing.T) {
	var a, b result.Field
	assert.True(t, a.Equal(b))

	bound := sampleResult().Field(0, 0)
	assert.False(t, a.Equal(bound))
	assert.False(t, bound.Equal(a))
}

func TestFieldUnboundPanics(t *testing.T) {
	var f result.Field
	assert.False(t, f.Bound())
	assert.Panics(t, func() { f.View() })
	assert.Panics(t, func() { f.IsNull() })
	assert.Panics(t, func() { f.Len() })
	assert.Panics(t, func() { f.Name() })
}

func TestFieldCopySharesHome(t *testing.T) {
	res := sampleResult()
	f := res.Field(0, 1)
	g := f
	assert.True(t, f.Equal(g))
	assert.Equal(t, f.View(), g.View())
}

func TestFieldString(t *testing.T) {
	res := sampleResult()
	assert.Equal(t, "alice", res.Field(0, 1).String())
	assert.Equal(t, "", res.Field(0, 2).String(), "NULL renders as empty text")
}

func TestFieldWriteTo(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	n, err := res.Field(0, 1).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "alice", buf.String())
}

func TestRowAccess(t *testing.T) {
	res := sampleResult()
	row := res.Row(0)
	assert.Equal(t, 3, row.Len())
	assert.Equal(t, 0, row.Index())
	assert.Same(t, res, row.Result())

	f := row.Field(1)
	assert.Equal(t, "alice", f.String())

	g, ok := row.FieldByName("note")
	require.True(t, ok)
	assert.True(t, g.IsNull())

	_, ok = row.FieldByName("missing")
	assert.False(t, ok)
}

func TestResultIndexPanics(t *testing.T) {
	res := sampleResult()
	assert.Panics(t, func() { res.Row(2) })
	assert.Panics(t, func() { res.Field(0, 3) })
	assert.Panics(t, func() { res.Field(-1, 0) })
}
