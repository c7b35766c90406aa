package value

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Builtin codecs for the closed set of core target types. Everything here
// can be replaced by a later Register call; user types extend the set the
// same way.

func registerSigned[T int | int8 | int16 | int32 | int64]() {
	bits := typeOf[T]().Bits()
	Register(Codec[T]{
		Parse: func(src []byte) (T, error) {
			n, err := strconv.ParseInt(string(src), 10, bits)
			if err != nil {
				return 0, NewParseError(TypeName[T](), src, err)
			}
			return T(n), nil
		},
		Format: func(v T) (string, error) {
			return strconv.FormatInt(int64(v), 10), nil
		},
	})
}

func registerUnsigned[T uint | uint8 | uint16 | uint32 | uint64]() {
	bits := typeOf[T]().Bits()
	Register(Codec[T]{
		Parse: func(src []byte) (T, error) {
			n, err := strconv.ParseUint(string(src), 10, bits)
			if err != nil {
				return 0, NewParseError(TypeName[T](), src, err)
			}
			return T(n), nil
		},
		Format: func(v T) (string, error) {
			return strconv.FormatUint(uint64(v), 10), nil
		},
	})
}

func registerFloat[T float32 | float64]() {
	bits := typeOf[T]().Bits()
	Register(Codec[T]{
		Parse: func(src []byte) (T, error) {
			f, err := strconv.ParseFloat(string(src), bits)
			if err != nil {
				return 0, NewParseError(TypeName[T](), src, err)
			}
			return T(f), nil
		},
		Format: func(v T) (string, error) {
			return strconv.FormatFloat(float64(v), 'g', -1, bits), nil
		},
	})
}

// parseBool accepts the PostgreSQL boolean literals in either case.
func parseBool(src []byte) (bool, error) {
	switch string(src) {
	case "t", "T", "true", "TRUE", "True", "1", "yes", "on":
		return true, nil
	case "f", "F", "false", "FALSE", "False", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean literal")
}

// timeLayouts are tried in order when parsing timestamps. The first two
// match PostgreSQL's text output with and without a zone offset.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02",
}

func parseTime(src []byte) (time.Time, error) {
	s := string(src)
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func init() {
	registerSigned[int]()
	registerSigned[int8]()
	registerSigned[int16]()
	registerSigned[int32]()
	registerSigned[int64]()
	registerUnsigned[uint]()
	registerUnsigned[uint8]()
	registerUnsigned[uint16]()
	registerUnsigned[uint32]()
	registerUnsigned[uint64]()
	registerFloat[float32]()
	registerFloat[float64]()

	Register(Codec[bool]{
		Parse: func(src []byte) (bool, error) {
			b, err := parseBool(src)
			if err != nil {
				return false, NewParseError("bool", src, err)
			}
			return b, nil
		},
		Format: func(v bool) (string, error) {
			return strconv.FormatBool(v), nil
		},
	})

	// string and []byte copy the exact byte range. Interior NUL bytes and
	// invalid UTF-8 pass through untouched.
	Register(Codec[string]{
		Parse:  func(src []byte) (string, error) { return string(src), nil },
		Format: func(v string) (string, error) { return v, nil },
	})
	Register(Codec[[]byte]{
		Parse: func(src []byte) ([]byte, error) {
			out := make([]byte, len(src))
			copy(out, src)
			return out, nil
		},
		Format: func(v []byte) (string, error) { return string(v), nil },
	})

	Register(Codec[time.Time]{
		Parse: func(src []byte) (time.Time, error) {
			t, err := parseTime(src)
			if err != nil {
				return time.Time{}, NewParseError("time.Time", src, err)
			}
			return t, nil
		},
		Format: func(v time.Time) (string, error) {
			return v.Format("2006-01-02 15:04:05.999999999-07:00"), nil
		},
	})

	Register(Codec[uuid.UUID]{
		Parse: func(src []byte) (uuid.UUID, error) {
			u, err := uuid.ParseBytes(src)
			if err != nil {
				return uuid.UUID{}, NewParseError("uuid.UUID", src, err)
			}
			return u, nil
		},
		Format: func(v uuid.UUID) (string, error) { return v.String(), nil },
	})

	Register(Codec[apd.Decimal]{
		Parse: func(src []byte) (apd.Decimal, error) {
			d, _, err := apd.NewFromString(string(src))
			if err != nil {
				return apd.Decimal{}, NewParseError("apd.Decimal", src, err)
			}
			return *d, nil
		},
		Format: func(v apd.Decimal) (string, error) { return v.String(), nil },
	})
}
