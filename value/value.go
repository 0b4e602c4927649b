// Package value defines the tagged value model exchanged with the GBLN codec.
//
// A Value is exactly one Kind. Scalars carry a payload of fixed bit width;
// List is an ordered sequence and Map an ordered set of key/value entries
// whose keys are unique by contract. Values are immutable once built: the
// container accessors return copies.
package value

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindStr
	KindList
	KindMap
)

// String returns the GBLN type tag for scalar kinds and a plain name for
// containers.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "n"
	case KindBool:
		return "b"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindStr:
		return "s"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindI8 && k <= KindI64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindU8 && k <= KindU64
}

// IsInteger reports whether k is any integer kind.
func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// IsFloat reports whether k is f32 or f64.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// BitSize returns the payload width of numeric kinds and 0 otherwise.
func (k Kind) BitSize() int {
	switch k {
	case KindI8, KindU8:
		return 8
	case KindI16, KindU16:
		return 16
	case KindI32, KindU32, KindF32:
		return 32
	case KindI64, KindU64, KindF64:
		return 64
	default:
		return 0
	}
}

// Value is a tagged GBLN value. A nil *Value reads as null.
type Value struct {
	kind Kind

	// Scalar payloads (only the one matching kind is meaningful)
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string

	// Container payloads
	listVal []*Value
	mapVal  []Entry
}

// Entry is a key/value pair of a Map.
type Entry struct {
	Key   string
	Value *Value
}

// Null creates a null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool creates a boolean value.
func Bool(v bool) *Value { return &Value{kind: KindBool, boolVal: v} }

func I8(v int8) *Value   { return &Value{kind: KindI8, intVal: int64(v)} }
func I16(v int16) *Value { return &Value{kind: KindI16, intVal: int64(v)} }
func I32(v int32) *Value { return &Value{kind: KindI32, intVal: int64(v)} }
func I64(v int64) *Value { return &Value{kind: KindI64, intVal: v} }

func U8(v uint8) *Value   { return &Value{kind: KindU8, uintVal: uint64(v)} }
func U16(v uint16) *Value { return &Value{kind: KindU16, uintVal: uint64(v)} }
func U32(v uint32) *Value { return &Value{kind: KindU32, uintVal: uint64(v)} }
func U64(v uint64) *Value { return &Value{kind: KindU64, uintVal: v} }

// F32 stores v at 32-bit precision.
func F32(v float32) *Value { return &Value{kind: KindF32, floatVal: float64(v)} }

func F64(v float64) *Value { return &Value{kind: KindF64, floatVal: v} }

// Str creates a string value.
func Str(v string) *Value { return &Value{kind: KindStr, strVal: v} }

// List creates a list from items. The slice is copied.
func List(items ...*Value) *Value {
	return &Value{kind: KindList, listVal: append([]*Value(nil), items...)}
}

// Map creates a map from entries in the given order. The slice is copied.
// Keys are expected to be unique; Map does not check.
func Map(entries ...Entry) *Value {
	return &Value{kind: KindMap, mapVal: append([]Entry(nil), entries...)}
}

// Kind returns the variant tag.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

func (v *Value) mismatch(want string) error {
	return fmt.Errorf("value: expected %s, got %s", want, v.Kind())
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, v.mismatch("b")
	}
	return v.boolVal, nil
}

// AsInt returns the payload of a signed integer kind.
func (v *Value) AsInt() (int64, error) {
	if !v.Kind().IsSigned() {
		return 0, v.mismatch("signed integer")
	}
	return v.intVal, nil
}

// AsUint returns the payload of an unsigned integer kind.
func (v *Value) AsUint() (uint64, error) {
	if !v.Kind().IsUnsigned() {
		return 0, v.mismatch("unsigned integer")
	}
	return v.uintVal, nil
}

// AsFloat returns the payload of f32 or f64, widened to float64.
func (v *Value) AsFloat() (float64, error) {
	if !v.Kind().IsFloat() {
		return 0, v.mismatch("float")
	}
	return v.floatVal, nil
}

// AsStr returns the string payload.
func (v *Value) AsStr() (string, error) {
	if v.Kind() != KindStr {
		return "", v.mismatch("s")
	}
	return v.strVal, nil
}

// AsList returns a copy of the list items.
func (v *Value) AsList() ([]*Value, error) {
	if v.Kind() != KindList {
		return nil, v.mismatch("list")
	}
	return append([]*Value(nil), v.listVal...), nil
}

// AsMap returns a copy of the map entries in stored order.
func (v *Value) AsMap() ([]Entry, error) {
	if v.Kind() != KindMap {
		return nil, v.mismatch("map")
	}
	return append([]Entry(nil), v.mapVal...), nil
}

// Get returns the value stored under key in a map.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindMap {
		return nil, false
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of list items or map entries, 0 for scalars.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Equal reports deep equality including kind tags. Maps compare as
// unordered; NaN equals NaN.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindI8, KindI16, KindI32, KindI64:
		return a.intVal == b.intVal
	case KindU8, KindU16, KindU32, KindU64:
		return a.uintVal == b.uintVal
	case KindF32, KindF64:
		if math.IsNaN(a.floatVal) && math.IsNaN(b.floatVal) {
			return true
		}
		return a.floatVal == b.floatVal
	case KindStr:
		return a.strVal == b.strVal
	case KindList:
		if len(a.listVal) != len(b.listVal) {
			return false
		}
		for i := range a.listVal {
			if !Equal(a.listVal[i], b.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		for _, e := range a.mapVal {
			other, ok := b.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v for debugging, e.g. Map{a: List[U8(1)]}.
// Map entries are listed in sorted key order.
func (v *Value) String() string {
	var sb strings.Builder
	v.writeDebug(&sb)
	return sb.String()
}

func (v *Value) writeDebug(sb *strings.Builder) {
	switch k := v.Kind(); k {
	case KindNull:
		sb.WriteString("Null")
	case KindBool:
		fmt.Fprintf(sb, "Bool(%t)", v.boolVal)
	case KindI8, KindI16, KindI32, KindI64:
		fmt.Fprintf(sb, "I%d(%d)", k.BitSize(), v.intVal)
	case KindU8, KindU16, KindU32, KindU64:
		fmt.Fprintf(sb, "U%d(%d)", k.BitSize(), v.uintVal)
	case KindF32, KindF64:
		fmt.Fprintf(sb, "F%d(%g)", k.BitSize(), v.floatVal)
	case KindStr:
		fmt.Fprintf(sb, "Str(%q)", v.strVal)
	case KindList:
		sb.WriteString("List[")
		for i, item := range v.listVal {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.writeDebug(sb)
		}
		sb.WriteString("]")
	case KindMap:
		entries := append([]Entry(nil), v.mapVal...)
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
		sb.WriteString("Map{")
		for i, e := range entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Key)
			sb.WriteString(": ")
			e.Value.writeDebug(sb)
		}
		sb.WriteString("}")
	}
}
