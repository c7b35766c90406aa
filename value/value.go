package value

import (
	"encoding"
	"errors"
	"reflect"
	"strconv"
	"sync"
)

// Codec holds the parse and format functions for one target type.
//
// Parse receives the exact byte span of a non-null cell and must not retain
// it unless the type is an explicit borrowed view (see Raw). Format is the
// inverse, used for round-tripping and display.
type Codec[T any] struct {
	Parse  func([]byte) (T, error)
	Format func(T) (string, error)
}

// registry maps reflect.Type -> Codec[T] (stored as any).
// Registration happens at init time; lookups are lock-free reads.
var registry sync.Map

// nullability maps reflect.Type -> func() T (stored as any), producing the
// canonical null value for types that declare a null domain.
var nullability sync.Map

// NullSetter is implemented by pointer receivers of types that can
// represent "no value" natively. SetNull puts the receiver into its
// canonical null state.
//
// Implementing NullSetter is the interface-based way to declare a null
// domain; RegisterNull is the registry-based way for foreign types whose
// pointers cannot be extended with methods.
type NullSetter interface {
	SetNull()
}

// Nullable reports whether a value is in its null state. Implemented by
// Null[T] and by foreign optional types; used by formatting helpers.
type Nullable interface {
	IsNull() bool
}

// Register installs a codec for T, replacing any previous registration.
// Call from init functions; Register must not race with conversions.
func Register[T any](c Codec[T]) {
	registry.Store(typeOf[T](), c)
}

// RegisterNull declares that T has a null domain, with factory producing
// the canonical null value. Types whose pointer implements NullSetter need
// no registration.
func RegisterNull[T any](factory func() T) {
	nullability.Store(typeOf[T](), factory)
}

// HasNull reports whether T declares a null domain.
func HasNull[T any]() bool {
	if _, ok := any(new(T)).(NullSetter); ok {
		return true
	}
	_, ok := nullability.Load(typeOf[T]())
	return ok
}

// NullOf returns the canonical null value of T and true, or the zero value
// and false when T has no null domain.
func NullOf[T any]() (T, bool) {
	var zero T
	if s, ok := any(&zero).(NullSetter); ok {
		s.SetNull()
		return zero, true
	}
	if f, ok := nullability.Load(typeOf[T]()); ok {
		return f.(func() T)(), true
	}
	return zero, false
}

// FromText parses the byte span of a non-null cell into a T.
//
// Resolution order:
//  1. a codec registered for T
//  2. encoding.TextUnmarshaler implemented on *T
//  3. a kind-derived parser for named types with a basic underlying kind
//
// A type outside all three yields a NO_CODEC ConvError. Parse failures are
// reported as PARSE_FAILED and wrap the underlying error.
func FromText[T any](src []byte) (T, error) {
	if c, ok := registry.Load(typeOf[T]()); ok {
		return c.(Codec[T]).Parse(src)
	}
	var out T
	if u, ok := any(&out).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText(src); err != nil {
			var ce *ConvError
			if errors.As(err, &ce) {
				return out, err
			}
			return out, NewParseError(TypeName[T](), src, err)
		}
		return out, nil
	}
	if ok, err := fromTextKind(&out, src); ok {
		return out, err
	}
	return out, &ConvError{Code: ErrCodeNoCodec, Type: TypeName[T]()}
}

// ToText serializes v to its textual form, mirroring FromText's resolution
// order with encoding.TextMarshaler in place of TextUnmarshaler.
func ToText[T any](v T) (string, error) {
	if c, ok := registry.Load(typeOf[T]()); ok {
		return c.(Codec[T]).Format(v)
	}
	if m, ok := any(&v).(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if s, ok := toTextKind(v); ok {
		return s, nil
	}
	return "", &ConvError{Code: ErrCodeNoCodec, Type: TypeName[T]()}
}

// TypeName returns the Go name of T for use in error messages.
func TypeName[T any]() string {
	return typeOf[T]().String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// fromTextKind parses src into named types with a basic underlying kind,
// using reflection. Covers custom types like `type UserID int64` without
// per-type registration. Returns ok=false when the kind is unsupported.
func fromTextKind[T any](dst *T, src []byte) (ok bool, err error) {
	rv := reflect.ValueOf(dst).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(string(src))
		return true, nil
	case reflect.Bool:
		b, perr := parseBool(src)
		if perr != nil {
			return true, NewParseError(TypeName[T](), src, perr)
		}
		rv.SetBool(b)
		return true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, perr := strconv.ParseInt(string(src), 10, rv.Type().Bits())
		if perr != nil {
			return true, NewParseError(TypeName[T](), src, perr)
		}
		rv.SetInt(n)
		return true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, perr := strconv.ParseUint(string(src), 10, rv.Type().Bits())
		if perr != nil {
			return true, NewParseError(TypeName[T](), src, perr)
		}
		rv.SetUint(n)
		return true, nil
	case reflect.Float32, reflect.Float64:
		f, perr := strconv.ParseFloat(string(src), rv.Type().Bits())
		if perr != nil {
			return true, NewParseError(TypeName[T](), src, perr)
		}
		rv.SetFloat(f)
		return true, nil
	}
	return false, nil
}

// toTextKind is the formatting counterpart of fromTextKind.
func toTextKind(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), true
	}
	return "", false
}
