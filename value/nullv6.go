package value

import (
	"strconv"

	null "gopkg.in/volatiletech/null.v6"
)

// Null-domain and codec registrations for the volatiletech nullable
// wrappers, so they work with As and Get the same way Null[T] does. Only
// the wrappers with a natural textual form are covered; the JSON wrapper
// stays out because its text is not a single value.

func init() {
	RegisterNull(func() null.String { return null.String{} })
	Register(Codec[null.String]{
		Parse: func(src []byte) (null.String, error) {
			return null.StringFrom(string(src)), nil
		},
		Format: func(v null.String) (string, error) { return v.String, nil },
	})

	RegisterNull(func() null.Int { return null.Int{} })
	Register(Codec[null.Int]{
		Parse: func(src []byte) (null.Int, error) {
			n, err := strconv.ParseInt(string(src), 10, 0)
			if err != nil {
				return null.Int{}, NewParseError("null.Int", src, err)
			}
			return null.IntFrom(int(n)), nil
		},
		Format: func(v null.Int) (string, error) {
			return strconv.Itoa(v.Int), nil
		},
	})

	RegisterNull(func() null.Int64 { return null.Int64{} })
	Register(Codec[null.Int64]{
		Parse: func(src []byte) (null.Int64, error) {
			n, err := strconv.ParseInt(string(src), 10, 64)
			if err != nil {
				return null.Int64{}, NewParseError("null.Int64", src, err)
			}
			return null.Int64From(n), nil
		},
		Format: func(v null.Int64) (string, error) {
			return strconv.FormatInt(v.Int64, 10), nil
		},
	})

	RegisterNull(func() null.Float64 { return null.Float64{} })
	Register(Codec[null.Float64]{
		Parse: func(src []byte) (null.Float64, error) {
			f, err := strconv.ParseFloat(string(src), 64)
			if err != nil {
				return null.Float64{}, NewParseError("null.Float64", src, err)
			}
			return null.Float64From(f), nil
		},
		Format: func(v null.Float64) (string, error) {
			return strconv.FormatFloat(v.Float64, 'g', -1, 64), nil
		},
	})

	RegisterNull(func() null.Bool { return null.Bool{} })
	Register(Codec[null.Bool]{
		Parse: func(src []byte) (null.Bool, error) {
			b, err := parseBool(src)
			if err != nil {
				return null.Bool{}, NewParseError("null.Bool", src, err)
			}
			return null.BoolFrom(b), nil
		},
		Format: func(v null.Bool) (string, error) {
			return strconv.FormatBool(v.Bool), nil
		},
	})

	RegisterNull(func() null.Time { return null.Time{} })
	Register(Codec[null.Time]{
		Parse: func(src []byte) (null.Time, error) {
			t, err := parseTime(src)
			if err != nil {
				return null.Time{}, NewParseError("null.Time", src, err)
			}
			return null.TimeFrom(t), nil
		},
		Format: func(v null.Time) (string, error) {
			return v.Time.Format("2006-01-02 15:04:05.999999999-07:00"), nil
		},
	})

	RegisterNull(func() null.Bytes { return null.Bytes{} })
	Register(Codec[null.Bytes]{
		Parse: func(src []byte) (null.Bytes, error) {
			out := make([]byte, len(src))
			copy(out, src)
			return null.BytesFrom(out), nil
		},
		Format: func(v null.Bytes) (string, error) { return string(v.Bytes), nil },
	})
}
