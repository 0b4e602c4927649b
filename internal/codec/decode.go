package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/gbln/value"
)

// Decode parses a GBLN document. Empty input decodes to an empty map.
func Decode(text string) (*value.Value, error) {
	d := &decoder{src: text}
	d.skipSpace()

	if d.eof() {
		return value.Map(), nil
	}

	switch d.peek() {
	case '<', '{', '[':
		v, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		d.skipSpace()
		if !d.eof() {
			return nil, d.errorf(d.pos, "unexpected %q after value", d.peek())
		}
		return v, nil
	default:
		entries, err := d.parseMembers(0)
		if err != nil {
			return nil, err
		}
		return value.Map(entries...), nil
	}
}

type decoder struct {
	src string
	pos int
}

func (d *decoder) eof() bool {
	return d.pos >= len(d.src)
}

func (d *decoder) peek() byte {
	return d.src[d.pos]
}

// skipSpace skips whitespace and ":|" line comments.
func (d *decoder) skipSpace() {
	for !d.eof() {
		switch c := d.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			d.pos++
		case c == ':' && strings.HasPrefix(d.src[d.pos:], ":|"):
			end := strings.IndexByte(d.src[d.pos:], '\n')
			if end < 0 {
				d.pos = len(d.src)
			} else {
				d.pos += end + 1
			}
		default:
			return
		}
	}
}

// parseMembers reads members until closer, or until end of input when
// closer is 0.
func (d *decoder) parseMembers(closer byte) ([]value.Entry, error) {
	var entries []value.Entry
	seen := make(map[string]struct{})

	for {
		d.skipSpace()
		if d.eof() {
			if closer == 0 {
				return entries, nil
			}
			return nil, d.errorf(d.pos, "unexpected end of input, expected %q", closer)
		}
		if closer != 0 && d.peek() == closer {
			d.pos++
			return entries, nil
		}

		keyPos := d.pos
		key, err := d.parseKey()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, d.errorf(keyPos, "duplicate key %q", key)
		}
		seen[key] = struct{}{}

		d.skipSpace()
		v, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry{Key: key, Value: v})
	}
}

func (d *decoder) parseKey() (string, error) {
	start := d.pos

	if d.peek() == '"' {
		d.pos++
		for !d.eof() {
			switch d.peek() {
			case '\\':
				d.pos += 2
			case '"':
				d.pos++
				key, err := strconv.Unquote(d.src[start:d.pos])
				if err != nil {
					return "", d.errorf(start, "invalid quoted key %s", d.src[start:d.pos])
				}
				return key, nil
			default:
				d.pos++
			}
		}
		return "", d.errorf(start, "unterminated quoted key")
	}

	if !isIdentStart(d.peek()) {
		return "", d.errorf(start, "expected key, found %q", d.peek())
	}
	for !d.eof() && isIdentPart(d.peek()) {
		d.pos++
	}
	return d.src[start:d.pos], nil
}

func (d *decoder) parseValue() (*value.Value, error) {
	if d.eof() {
		return nil, d.errorf(d.pos, "unexpected end of input, expected value")
	}

	switch c := d.peek(); c {
	case '<':
		return d.parseTyped()
	case '{':
		d.pos++
		entries, err := d.parseMembers('}')
		if err != nil {
			return nil, err
		}
		return value.Map(entries...), nil
	case '[':
		d.pos++
		return d.parseItems()
	default:
		return nil, d.errorf(d.pos, "expected '<', '{' or '[', found %q", c)
	}
}

func (d *decoder) parseItems() (*value.Value, error) {
	var items []*value.Value
	for {
		d.skipSpace()
		if d.eof() {
			return nil, d.errorf(d.pos, "unexpected end of input, expected ']'")
		}
		if d.peek() == ']' {
			d.pos++
			return value.List(items...), nil
		}
		v, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (d *decoder) parseTyped() (*value.Value, error) {
	tagPos := d.pos
	d.pos++ // consume <

	end := strings.IndexByte(d.src[d.pos:], '>')
	if end < 0 {
		return nil, d.errorf(tagPos, "unterminated type tag")
	}
	tag := d.src[d.pos : d.pos+end]
	d.pos += end + 1

	kind, bound, ok := parseTag(tag)
	if !ok {
		return nil, d.errorf(tagPos, "unknown type tag %q", tag)
	}

	d.skipSpace()
	if d.eof() || d.peek() != '(' {
		return nil, d.errorf(d.pos, "expected '(' after type tag <%s>", tag)
	}
	rawPos := d.pos + 1
	raw, err := d.readRaw()
	if err != nil {
		return nil, err
	}

	v, err := scalar(kind, bound, raw)
	if err != nil {
		return nil, d.errorf(rawPos, "%v", err)
	}
	return v, nil
}

// readRaw reads a parenthesised payload, resolving escapes.
func (d *decoder) readRaw() (string, error) {
	start := d.pos
	d.pos++ // consume (

	var sb strings.Builder
	for !d.eof() {
		c := d.peek()
		switch c {
		case ')':
			d.pos++
			return sb.String(), nil
		case '\\':
			if d.pos+1 >= len(d.src) {
				return "", d.errorf(d.pos, "unterminated escape")
			}
			switch esc := d.src[d.pos+1]; esc {
			case '\\', '(', ')':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", d.errorf(d.pos, "invalid escape \\%c", esc)
			}
			d.pos += 2
		default:
			sb.WriteByte(c)
			d.pos++
		}
	}
	return "", d.errorf(start, "unterminated value, expected ')'")
}

func scalar(kind value.Kind, bound int, raw string) (*value.Value, error) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case kind.IsSigned():
		n, err := strconv.ParseInt(trimmed, 10, kind.BitSize())
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", kind, raw)
		}
		switch kind {
		case value.KindI8:
			return value.I8(int8(n)), nil
		case value.KindI16:
			return value.I16(int16(n)), nil
		case value.KindI32:
			return value.I32(int32(n)), nil
		default:
			return value.I64(n), nil
		}

	case kind.IsUnsigned():
		n, err := strconv.ParseUint(trimmed, 10, kind.BitSize())
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", kind, raw)
		}
		switch kind {
		case value.KindU8:
			return value.U8(uint8(n)), nil
		case value.KindU16:
			return value.U16(uint16(n)), nil
		case value.KindU32:
			return value.U32(uint32(n)), nil
		default:
			return value.U64(n), nil
		}

	case kind.IsFloat():
		f, err := strconv.ParseFloat(trimmed, kind.BitSize())
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", kind, raw)
		}
		if kind == value.KindF32 {
			return value.F32(float32(f)), nil
		}
		return value.F64(f), nil

	case kind == value.KindBool:
		switch trimmed {
		case "t", "true":
			return value.Bool(true), nil
		case "f", "false":
			return value.Bool(false), nil
		}
		return nil, fmt.Errorf("invalid b value %q", raw)

	case kind == value.KindNull:
		switch trimmed {
		case "", "n", "null":
			return value.Null(), nil
		}
		return nil, fmt.Errorf("invalid n value %q", raw)

	default:
		if bound > 0 {
			if n := utf8.RuneCountInString(raw); n > bound {
				return nil, fmt.Errorf("string of %d characters exceeds s%d", n, bound)
			}
		}
		return value.Str(raw), nil
	}
}

// errorf builds a SyntaxError for the given byte offset.
func (d *decoder) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{
		Msg: fmt.Sprintf(format, args...),
		Pos: positionAt(d.src, offset),
	}
}

func positionAt(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
		Offset: offset,
	}
}
