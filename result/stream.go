package result

import (
	"errors"
	"fmt"
	"io"
)

// ErrSeekUnsupported is returned by Reader.Seek: field readers are
// forward-only views and do not support repositioning.
var ErrSeekUnsupported = errors.New("result: field reader does not support seeking")

// Reader adapts a field's byte span to the standard reader interfaces so
// generic formatted extraction (fmt.Fscan and friends) can be reused for
// types outside the codec registry. It reads directly from the result's
// storage with no buffering of its own.
type Reader struct {
	b   []byte
	pos int
}

// NewReader returns a reader over f's current text. A NULL cell reads as
// empty. The reader is only valid while f's Result is reachable.
func NewReader(f Field) *Reader {
	return &Reader{b: f.View()}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.pos:])
	r.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	c := r.b[r.pos]
	r.pos++
	return c, nil
}

// WriteTo implements io.WriterTo, writing the unread remainder verbatim.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.pos >= len(r.b) {
		return 0, nil
	}
	n, err := w.Write(r.b[r.pos:])
	r.pos += n
	return int64(n), err
}

// Seek always fails with ErrSeekUnsupported. It exists so that misuse is
// rejected loudly instead of silently misbehaving.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return 0, ErrSeekUnsupported
}

// Scan parses the field's text into dsts using fmt.Fscan semantics
// (space-separated tokens, one per destination). It complements the typed
// conversion entry points for ad-hoc formatted extraction.
func Scan(f Field, dsts ...any) error {
	n, err := fmt.Fscan(NewReader(f), dsts...)
	if err != nil {
		return fmt.Errorf("result: scanning field %q: %w", f.Name(), err)
	}
	if n != len(dsts) {
		return fmt.Errorf("result: scanning field %q: got %d of %d values", f.Name(), n, len(dsts))
	}
	return nil
}
