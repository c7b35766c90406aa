// Package arraylit scans PostgreSQL array literals lazily.
//
// The parser walks the literal one item at a time; nothing is decoded
// ahead of the caller and element text is unescaped into fresh buffers
// only when an element is actually produced. The input bytes are borrowed
// from the caller (typically a field's view) and must stay alive until
// parsing is finished.
package arraylit

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
)

// Kind classifies one parse item.
type Kind int

const (
	// KindDone reports the end of the literal. Next keeps returning it.
	KindDone Kind = iota

	// KindStart marks the opening brace of an array or sub-array.
	KindStart

	// KindEnd marks a closing brace.
	KindEnd

	// KindElem carries one element's text, unescaped.
	KindElem

	// KindNull marks an unquoted NULL element.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindElem:
		return "elem"
	case KindNull:
		return "null"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Item is one step of the parse: a structural marker or an element.
type Item struct {
	Kind Kind

	// Text is the element's unescaped text, set for KindElem only. A
	// quoted empty string yields an empty Text with Kind KindElem, which
	// is distinct from KindNull.
	Text string
}

// SyntaxError reports malformed array syntax with a byte offset into the
// literal.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("arraylit: offset %d: %s", e.Offset, e.Msg)
}

// Parser is a lazy scanner over one array literal.
type Parser struct {
	src     []byte
	enc     encoding.Encoding
	pos     int
	depth   int
	started bool
	done    bool
}

// New returns a parser over src under the given text-encoding context.
//
// Scanning is byte-oriented and correct for ASCII-compatible encodings
// (UTF-8 and the single-byte charmaps); the encoding is carried so callers
// can transcode element text when the context is not UTF-8.
func New(src []byte, enc encoding.Encoding) *Parser {
	return &Parser{src: src, enc: enc}
}

// Encoding returns the text-encoding context the parser was created with.
func (p *Parser) Encoding() encoding.Encoding { return p.enc }

// Next returns the next item of the literal. After the final closing brace
// (or on an empty literal) it returns KindDone forever. A non-nil error
// means malformed syntax; the parser is not usable afterwards.
func (p *Parser) Next() (Item, error) {
	if p.done {
		return Item{Kind: KindDone}, nil
	}
	p.skipSpace()

	// Dimension prefix like [1:3]= may precede the first brace.
	if !p.started && p.pos < len(p.src) && p.src[p.pos] == '[' {
		if err := p.skipDimensions(); err != nil {
			return Item{}, err
		}
		p.skipSpace()
	}

	if p.pos >= len(p.src) {
		if p.depth != 0 {
			return Item{}, &SyntaxError{Offset: p.pos, Msg: "unterminated array"}
		}
		p.done = true
		return Item{Kind: KindDone}, nil
	}

	switch c := p.src[p.pos]; c {
	case '{':
		p.pos++
		p.depth++
		p.started = true
		return Item{Kind: KindStart}, nil
	case '}':
		if p.depth == 0 {
			return Item{}, &SyntaxError{Offset: p.pos, Msg: "unbalanced '}'"}
		}
		p.pos++
		p.depth--
		if p.depth == 0 {
			p.skipSpace()
			if p.pos < len(p.src) {
				return Item{}, &SyntaxError{Offset: p.pos, Msg: "trailing data after array"}
			}
			p.done = true
		}
		return Item{Kind: KindEnd}, nil
	case ',':
		p.pos++
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] == ',' || p.src[p.pos] == '}' {
			return Item{}, &SyntaxError{Offset: p.pos, Msg: "missing element after ','"}
		}
		return p.Next()
	case '"':
		return p.quoted()
	default:
		if !p.started {
			return Item{}, &SyntaxError{Offset: p.pos, Msg: "array literal must start with '{'"}
		}
		return p.unquoted()
	}
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

// skipDimensions consumes a [lo:hi][lo:hi]...= prefix.
func (p *Parser) skipDimensions() error {
	for p.pos < len(p.src) && p.src[p.pos] == '[' {
		for p.pos < len(p.src) && p.src[p.pos] != ']' {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return &SyntaxError{Offset: p.pos, Msg: "unterminated dimension spec"}
		}
		p.pos++ // ']'
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return &SyntaxError{Offset: p.pos, Msg: "dimension spec must end with '='"}
	}
	p.pos++
	return nil
}

// quoted consumes a double-quoted element, resolving backslash escapes.
func (p *Parser) quoted() (Item, error) {
	start := p.pos
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case '\\':
			if p.pos+1 >= len(p.src) {
				return Item{}, &SyntaxError{Offset: p.pos, Msg: "dangling backslash"}
			}
			sb.WriteByte(p.src[p.pos+1])
			p.pos += 2
		case '"':
			p.pos++
			return Item{Kind: KindElem, Text: sb.String()}, nil
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return Item{}, &SyntaxError{Offset: start, Msg: "unterminated quoted element"}
}

// unquoted consumes an element up to the next delimiter. The literal NULL
// (any case) is a null element.
func (p *Parser) unquoted() (Item, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' || c == '}' {
			break
		}
		if c == '{' || c == '"' {
			return Item{}, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("unexpected %q in element", c)}
		}
		p.pos++
	}
	text := strings.TrimRight(string(p.src[start:p.pos]), " \t\n")
	if strings.EqualFold(text, "NULL") {
		return Item{Kind: KindNull}, nil
	}
	return Item{Kind: KindElem, Text: text}, nil
}
