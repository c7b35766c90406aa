package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	null "gopkg.in/volatiletech/null.v6"
)

func TestNullZeroIsNull(t *testing.T) {
	var n Null[int]
	assert.True(t, n.IsNull())
	_, ok := n.Get()
	assert.False(t, ok)
	assert.Equal(t, 7, n.Or(7))
}

func TestNullFrom(t *testing.T) {
	n := NullFrom(42)
	assert.False(t, n.IsNull())
	v, ok := n.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, n.Or(7))
}

func TestNullSetNull(t *testing.T) {
	n := NullFrom("x")
	n.SetNull()
	assert.True(t, n.IsNull())
	assert.Equal(t, "", n.V)
}

func TestNullUnmarshalText(t *testing.T) {
	var n Null[int64]
	require.NoError(t, n.UnmarshalText([]byte("99")))
	assert.Equal(t, NullFrom(int64(99)), n)

	err := n.UnmarshalText([]byte("bad"))
	assert.True(t, IsParseError(err))
}

func TestNullThroughFromText(t *testing.T) {
	n, err := FromText[Null[int]]([]byte("5"))
	require.NoError(t, err)
	assert.Equal(t, NullFrom(5), n)
}

func TestNullHasNullDomain(t *testing.T) {
	assert.True(t, HasNull[Null[int]]())
	assert.True(t, HasNull[Null[string]]())
	assert.True(t, HasNull[Nothing]())
	assert.False(t, HasNull[int]())
	assert.False(t, HasNull[string]())
	assert.False(t, HasNull[[]byte]())

	n, ok := NullOf[Null[int]]()
	assert.True(t, ok)
	assert.True(t, n.IsNull())

	_, ok = NullOf[float64]()
	assert.False(t, ok)
}

func TestNothingTrap(t *testing.T) {
	_, err := FromText[Nothing]([]byte("x"))
	require.Error(t, err)
	assert.True(t, IsNotNullError(err))
	assert.Contains(t, err.Error(), "Nothing")
}

func TestNothingNull(t *testing.T) {
	n, ok := NullOf[Nothing]()
	assert.True(t, ok)
	assert.Equal(t, Nothing{}, n)
	assert.True(t, n.IsNull())
}

func TestVolatiletechNullDomains(t *testing.T) {
	assert.True(t, HasNull[null.String]())
	assert.True(t, HasNull[null.Int]())
	assert.True(t, HasNull[null.Int64]())
	assert.True(t, HasNull[null.Float64]())
	assert.True(t, HasNull[null.Bool]())
	assert.True(t, HasNull[null.Time]())
	assert.True(t, HasNull[null.Bytes]())

	s, ok := NullOf[null.String]()
	assert.True(t, ok)
	assert.False(t, s.Valid)
}

func TestVolatiletechCodecs(t *testing.T) {
	s, err := FromText[null.String]([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("abc"), s)

	i, err := FromText[null.Int64]([]byte("-3"))
	require.NoError(t, err)
	assert.Equal(t, null.Int64From(-3), i)

	b, err := FromText[null.Bool]([]byte("t"))
	require.NoError(t, err)
	assert.Equal(t, null.BoolFrom(true), b)

	ts, err := FromText[null.Time]([]byte("2024-05-01 00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ts.Time)
	assert.True(t, ts.Valid)

	_, err = FromText[null.Int]([]byte("x"))
	assert.True(t, IsParseError(err))
}

func TestVolatiletechFormat(t *testing.T) {
	out, err := ToText(null.Int64From(12))
	require.NoError(t, err)
	assert.Equal(t, "12", out)

	out, err = ToText(null.StringFrom("v"))
	require.NoError(t, err)
	assert.Equal(t, "v", out)
}
