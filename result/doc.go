// Package result models a query result as immutable textual cells and
// provides typed, zero-copy field access over them.
//
// A Result owns one byte arena holding every cell's text plus per-cell
// null flags; Row and Field are cheap handles of (result pointer, index),
// never owners of data. A Field's View aliases the arena directly, so the
// bytes stay valid exactly as long as some handle keeps the Result
// reachable. Results are immutable once built and safe for concurrent
// read access without synchronization.
//
// Conversion runs through four call shapes, all funnelled into To:
//
//	ok, err := result.To(f, &n)        // populate, false means NULL
//	ok, err := result.ToOr(f, &n, 7)   // populate with default
//	n, err := result.AsOr(f, 7)        // return with default
//	n, err := result.As[int64](f)      // return or fail on NULL
//	o, err := result.Get[int64](f)     // value.Null[int64]
//
// Per-type parsing and null semantics live in the value package.
package result
