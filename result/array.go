package result

import (
	"github.com/rowview/rowview/arraylit"
)

// Array returns a lazy parser over the field's text as a PostgreSQL array
// literal, bound to the result's text-encoding context.
//
// No parsing happens until the caller pulls items from the parser, and the
// parser aliases the field's storage: keep the Result (or any Row or Field
// of it) alive until parsing is finished.
func (f Field) Array() *arraylit.Parser {
	f.mustBind()
	return arraylit.New(f.View(), f.home.enc)
}
