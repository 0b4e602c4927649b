package codec

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/gbln/value"
)

var scalarTags = map[string]value.Kind{
	"i8":  value.KindI8,
	"i16": value.KindI16,
	"i32": value.KindI32,
	"i64": value.KindI64,
	"u8":  value.KindU8,
	"u16": value.KindU16,
	"u32": value.KindU32,
	"u64": value.KindU64,
	"f32": value.KindF32,
	"f64": value.KindF64,
	"b":   value.KindBool,
	"n":   value.KindNull,
	"s":   value.KindStr,
}

// String bounds the encoder picks from, smallest first.
var stringBounds = []int{64, 256, 1024}

// parseTag resolves a type tag. For s<N> tags bound is N, otherwise 0.
func parseTag(tag string) (kind value.Kind, bound int, ok bool) {
	if k, found := scalarTags[tag]; found {
		return k, 0, true
	}
	if strings.HasPrefix(tag, "s") {
		n, err := strconv.Atoi(tag[1:])
		if err == nil && n > 0 && tag[1] != '+' {
			return value.KindStr, n, true
		}
	}
	return 0, 0, false
}

// stringTag returns the tag for s: the smallest bound that fits, else "s".
func stringTag(s string) string {
	n := utf8.RuneCountInString(s)
	for _, bound := range stringBounds {
		if n <= bound {
			return "s" + strconv.Itoa(bound)
		}
	}
	return "s"
}

// isIdent reports whether key can be written without quotes.
func isIdent(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isIdentStart(c) || (i > 0 && (isDigit(c) || c == '-')) {
			continue
		}
		return false
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
