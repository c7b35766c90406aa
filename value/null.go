package value

// Null is an optional wrapper around T: either a value or SQL NULL.
//
// Null[T] declares a null domain via NullSetter, so As and Get conversions
// of a null cell produce an invalid Null rather than an error. The zero
// Null is null.
type Null[T any] struct {
	V     T
	Valid bool
}

// NullFrom wraps v in a valid Null.
func NullFrom[T any](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

// IsNull reports whether n carries no value.
func (n Null[T]) IsNull() bool { return !n.Valid }

// Get returns the wrapped value and whether it is present.
func (n Null[T]) Get() (T, bool) { return n.V, n.Valid }

// Or returns the wrapped value, or def when n is null.
func (n Null[T]) Or(def T) T {
	if !n.Valid {
		return def
	}
	return n.V
}

// SetNull implements NullSetter: the canonical null is the zero Null.
func (n *Null[T]) SetNull() {
	var zero T
	n.V = zero
	n.Valid = false
}

// UnmarshalText parses the inner value through FromText and marks n valid.
func (n *Null[T]) UnmarshalText(src []byte) error {
	v, err := FromText[T](src)
	if err != nil {
		return err
	}
	n.V = v
	n.Valid = true
	return nil
}

// MarshalText serializes the inner value through ToText. A null Null
// serializes to the empty string; callers that care about the distinction
// should check Valid first.
func (n Null[T]) MarshalText() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	s, err := ToText(n.V)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Nothing is the always-null target type. Converting a NULL cell to
// Nothing succeeds; converting a present cell raises a NOT_NULL conversion
// error. The only use of this type is as a deliberate trap for code paths
// that must never see a value.
type Nothing struct{}

// SetNull implements NullSetter; Nothing is already null.
func (Nothing) SetNull() {}

// IsNull implements Nullable; always true.
func (Nothing) IsNull() bool { return true }

// UnmarshalText always fails: a present cell cannot become Nothing.
func (*Nothing) UnmarshalText(src []byte) error {
	return &ConvError{Code: ErrCodeNotNull, Type: "value.Nothing", Input: string(src)}
}

// Raw is a borrowed view of a cell's bytes. Converting to Raw aliases the
// result's storage instead of copying, so a Raw is only valid while the
// originating Result is reachable. Use []byte or string for owned copies.
type Raw []byte

func init() {
	Register(Codec[Raw]{
		Parse:  func(src []byte) (Raw, error) { return Raw(src), nil },
		Format: func(r Raw) (string, error) { return string(r), nil },
	})
}
