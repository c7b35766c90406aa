// Package value implements the per-type text conversion layer: parsing a
// cell's byte span into a Go value, serializing a value back to text, and
// declaring which types have a native representation of SQL NULL.
//
// The package is the system's extension point. To make a new type
// convertible, register a Codec for it (or implement encoding.TextMarshaler
// and TextUnmarshaler); if the type can represent absence, also declare its
// null domain via RegisterNull or a SetNull method. Nothing else in the
// conversion surface changes.
//
// Resolution order for FromText/ToText:
//  1. registered Codec
//  2. encoding.TextUnmarshaler / TextMarshaler
//  3. reflect-derived parser for named types with a basic underlying kind
//
// Registration is expected at init time; conversions after that are
// lock-free and safe for concurrent use.
package value
