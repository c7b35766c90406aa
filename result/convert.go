package result

import (
	"github.com/rowview/rowview/value"
)

// To reads the field into *dst, or leaves it untouched and returns false
// when the cell is NULL.
//
// To is the primitive every other conversion shape is built on. The false
// return is reserved for "the cell was NULL": a parse failure comes back
// as a non-nil error, never as a bare false. The ok result is only
// meaningful when err is nil.
func To[T any](f Field, dst *T) (ok bool, err error) {
	if f.IsNull() {
		return false, nil
	}
	v, err := value.FromText[T](f.View())
	if err != nil {
		return false, err
	}
	*dst = v
	return true, nil
}

// ToOr reads the field into *dst, assigning def when the cell is NULL.
// The ok result mirrors To's: it reports whether a value was present,
// independent of the default substitution.
func ToOr[T any](f Field, dst *T, def T) (ok bool, err error) {
	ok, err = To(f, dst)
	if err != nil {
		return false, err
	}
	if !ok {
		*dst = def
	}
	return ok, nil
}

// AsOr returns the field's value as a T, or def when the cell is NULL.
func AsOr[T any](f Field, def T) (T, error) {
	var obj T
	_, err := ToOr(f, &obj, def)
	return obj, err
}

// As returns the field's value as a T. When the cell is NULL, As returns
// T's canonical null value if T declares a null domain (value.Null[T],
// the volatiletech wrappers, value.Nothing); otherwise it fails with a
// NULL_VALUE conversion error naming T.
//
// Only the return forms consult the null-domain trait: the populate forms
// never manufacture a null representation.
func As[T any](f Field) (T, error) {
	var obj T
	ok, err := To(f, &obj)
	if err != nil {
		return obj, err
	}
	if !ok {
		if n, has := value.NullOf[T](); has {
			return n, nil
		}
		return obj, value.NewNullError(value.TypeName[T]())
	}
	return obj, nil
}

// Get returns the field wrapped in value.Null: invalid for NULL cells,
// valid and carrying the parsed value otherwise. Sugar for
// As[value.Null[T]].
func Get[T any](f Field) (value.Null[T], error) {
	return As[value.Null[T]](f)
}
