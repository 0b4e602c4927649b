package gbln

import (
	"github.com/mcncl/gbln/internal/convert"
	"github.com/mcncl/gbln/value"
)

var defaultBridge = mustDefault()

func mustDefault() *Bridge {
	b, err := New()
	if err != nil {
		panic(err)
	}
	return b
}

// Parse decodes GBLN text into a dynamic tree using the default bridge.
//
//	d, err := gbln.Parse("user{id<u32>(123)name<s64>(Alice)}")
//	// d == map[string]any{"user": map[string]any{"id": 123.0, "name": "Alice"}}
func Parse(text string) (any, error) {
	return defaultBridge.Parse(text)
}

// ToString encodes a dynamic tree as compact GBLN.
func ToString(d any) (string, error) {
	return defaultBridge.ToString(d)
}

// ToStringPretty encodes a dynamic tree as indented GBLN.
func ToStringPretty(d any) (string, error) {
	return defaultBridge.ToStringPretty(d)
}

// Encode encodes a dynamic tree, compact or indented.
func Encode(d any, pretty bool) (string, error) {
	return defaultBridge.Encode(d, pretty)
}

// DecodeValue decodes GBLN text keeping every type tag.
func DecodeValue(text string) (*value.Value, error) {
	return defaultBridge.DecodeValue(text)
}

// EncodeValue encodes v without any narrowing.
func EncodeValue(v *value.Value, pretty bool) string {
	return defaultBridge.EncodeValue(v, pretty)
}

// InferNumber returns the narrowest variant for n: U8..U64 for integral
// n >= 0, I8..I64 for integral n < 0, otherwise F64.
func InferNumber(n float64) *value.Value {
	return convert.InferNumber(n)
}
