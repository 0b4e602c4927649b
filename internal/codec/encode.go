package codec

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/mcncl/gbln/value"
)

// Encode writes v in compact form: no whitespace between tokens. A map at
// the top level is written as its members without braces.
func Encode(v *value.Value) string {
	e := &encoder{}
	e.document(v)
	return e.buf.String()
}

// EncodePretty writes v with one member or item per line, indenting nested
// containers by indent per level.
func EncodePretty(v *value.Value, indent string) string {
	e := &encoder{pretty: true, indent: indent}
	e.document(v)
	return e.buf.String()
}

type encoder struct {
	buf    bytes.Buffer
	pretty bool
	indent string
}

func (e *encoder) document(v *value.Value) {
	if v.Kind() != value.KindMap {
		e.writeValue(v, 0)
		return
	}

	entries, _ := v.AsMap()
	for i, entry := range entries {
		if e.pretty && i > 0 {
			e.buf.WriteByte('\n')
		}
		e.writeMember(entry, 0)
	}
}

func (e *encoder) writeMember(entry value.Entry, depth int) {
	if isIdent(entry.Key) {
		e.buf.WriteString(entry.Key)
	} else {
		e.buf.WriteString(strconv.Quote(entry.Key))
	}
	e.writeValue(entry.Value, depth)
}

func (e *encoder) writeValue(v *value.Value, depth int) {
	switch v.Kind() {
	case value.KindMap:
		entries, _ := v.AsMap()
		e.buf.WriteByte('{')
		for _, entry := range entries {
			e.newline(depth + 1)
			e.writeMember(entry, depth+1)
		}
		if len(entries) > 0 {
			e.newline(depth)
		}
		e.buf.WriteByte('}')

	case value.KindList:
		items, _ := v.AsList()
		e.buf.WriteByte('[')
		for _, item := range items {
			e.newline(depth + 1)
			e.writeValue(item, depth+1)
		}
		if len(items) > 0 {
			e.newline(depth)
		}
		e.buf.WriteByte(']')

	default:
		tag, raw := scalarText(v)
		e.buf.WriteByte('<')
		e.buf.WriteString(tag)
		e.buf.WriteString(">(")
		e.buf.WriteString(raw)
		e.buf.WriteByte(')')
	}
}

// newline starts a new indented line in pretty mode.
func (e *encoder) newline(depth int) {
	if !e.pretty {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

// scalarText returns the type tag and escaped payload of a scalar.
func scalarText(v *value.Value) (tag, raw string) {
	k := v.Kind()
	switch {
	case k == value.KindNull:
		return k.String(), ""
	case k == value.KindBool:
		b, _ := v.AsBool()
		if b {
			return k.String(), "t"
		}
		return k.String(), "f"
	case k.IsSigned():
		n, _ := v.AsInt()
		return k.String(), strconv.FormatInt(n, 10)
	case k.IsUnsigned():
		n, _ := v.AsUint()
		return k.String(), strconv.FormatUint(n, 10)
	case k.IsFloat():
		f, _ := v.AsFloat()
		return k.String(), strconv.FormatFloat(f, 'g', -1, k.BitSize())
	default:
		s, _ := v.AsStr()
		return stringTag(s), escaper.Replace(s)
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`(`, `\(`,
	`)`, `\)`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)
