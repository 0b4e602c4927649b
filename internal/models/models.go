package models

// Dynamic is any host-side value: nil, Undefined, bool, a number, string,
// a sequence or a keyed object.
type Dynamic = any

// Object is the keyed object produced by the outbound conversion.
type Object = map[string]any

// Array is the ordered sequence produced by the outbound conversion.
type Array = []any

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// String implements fmt.Stringer
func (UndefinedType) String() string { return "undefined" }

// Undefined marks an absent value. It converts to null exactly like nil.
var Undefined = UndefinedType{}
