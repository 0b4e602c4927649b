// Package codec reads and writes GBLN text.
//
// A document is either a sequence of members, which decodes to a map, or a
// single anonymous value:
//
//	user{id<u32>(123)name<s64>(Alice)tags[<s8>(a)<s8>(b)]}
//	[<u8>(1)<u8>(2)]
//
// Scalars are written as <tag>(raw); objects as {members}; arrays as
// [values]. Comments start with ":|" and run to the end of the line.
package codec

import (
	"fmt"

	"github.com/mcncl/gbln/value"
)

// DefaultIndent is one level of pretty indentation.
const DefaultIndent = "  "

// Codec is the GBLN codec with a fixed pretty indent.
type Codec struct {
	indent string
}

// New creates a Codec whose pretty output indents by indent per level.
func New(indent string) *Codec {
	return &Codec{indent: indent}
}

// Decode parses text into a Value.
func (c *Codec) Decode(text string) (*value.Value, error) {
	return Decode(text)
}

// Encode writes v in compact form.
func (c *Codec) Encode(v *value.Value) string {
	return Encode(v)
}

// EncodePretty writes v one member per line.
func (c *Codec) EncodePretty(v *value.Value) string {
	return EncodePretty(v, c.indent)
}

// Position is a location in the source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError is a decode failure with its location.
type SyntaxError struct {
	Msg string
	Pos Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}
