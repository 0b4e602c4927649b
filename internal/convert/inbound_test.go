package convert

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/gbln/internal/errors"
	"github.com/mcncl/gbln/internal/models"
	"github.com/mcncl/gbln/value"
)

type label string

func mustFromDynamic(t *testing.T, d any) *value.Value {
	t.Helper()
	v, err := FromDynamic(d, Options{})
	require.NoError(t, err)
	return v
}

func assertValue(t *testing.T, expected, got *value.Value) {
	t.Helper()
	assert.True(t, value.Equal(expected, got), "expected %s, got %s", expected, got)
}

func TestFromDynamic_NullAndUndefinedCollapse(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]any

	assertValue(t, value.Null(), mustFromDynamic(t, nil))
	assertValue(t, value.Null(), mustFromDynamic(t, models.Undefined))
	assertValue(t, value.Null(), mustFromDynamic(t, nilPtr))
	assertValue(t, value.Map(), mustFromDynamic(t, nilMap))
}

func TestFromDynamic_Scalars(t *testing.T) {
	n := 70000

	tests := []struct {
		name     string
		input    any
		expected *value.Value
	}{
		{"bool", false, value.Bool(false)},
		{"string", "Alice", value.Str("Alice")},
		{"named string", label("x"), value.Str("x")},
		{"float64 integral", 3.0, value.U8(3)},
		{"float64 fraction", 3.14, value.F64(3.14)},
		{"int", 300, value.U16(300)},
		{"int8", int8(-5), value.I8(-5)},
		{"int64", int64(-2147483649), value.I64(-2147483649)},
		{"uint64", uint64(4294967296), value.U64(4294967296)},
		{"float32", float32(1.5), value.F64(1.5)},
		{"json number int", json.Number("42"), value.U8(42)},
		{"json number float", json.Number("1.25"), value.F64(1.25)},
		{"pointer", &n, value.U32(70000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValue(t, tt.expected, mustFromDynamic(t, tt.input))
		})
	}
}

func TestFromDynamic_ContainerRecursion(t *testing.T) {
	input := map[string]any{
		"a": []any{1.0, 2.0, map[string]any{"b": 3.0}},
	}

	expected := value.Map(value.Entry{Key: "a", Value: value.List(
		value.U8(1),
		value.U8(2),
		value.Map(value.Entry{Key: "b", Value: value.U8(3)}),
	)})

	got := mustFromDynamic(t, input)
	assertValue(t, expected, got)

	back, err := ToDynamic(got)
	require.NoError(t, err)
	assert.Equal(t, input, back)
}

func TestFromDynamic_SequencesAndObjects(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected *value.Value
	}{
		{"empty sequence", []any{}, value.List()},
		{"nil sequence", []any(nil), value.List()},
		{"typed slice", []int{1, -1}, value.List(value.U8(1), value.I8(-1))},
		{"array", [2]string{"a", "b"}, value.List(value.Str("a"), value.Str("b"))},
		{"typed map", map[string]int{"n": 256}, value.Map(value.Entry{Key: "n", Value: value.U16(256)})},
		{"any keyed map", map[any]any{"k": true}, value.Map(value.Entry{Key: "k", Value: value.Bool(true)})},
		{"named key map", map[label]string{"k": "v"}, value.Map(value.Entry{Key: "k", Value: value.Str("v")})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValue(t, tt.expected, mustFromDynamic(t, tt.input))
		})
	}
}

func TestFromDynamic_EntriesAreSorted(t *testing.T) {
	got := mustFromDynamic(t, map[string]any{"zeta": 1.0, "alpha": 2.0, "mid": 3.0})

	entries, err := got.AsMap()
	require.NoError(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, keys)
}

func TestFromDynamic_InvalidKey(t *testing.T) {
	input := map[string]any{
		"a": []any{"ok", map[any]any{5: "five"}},
	}

	_, err := FromDynamic(input, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidKey)
	assert.Equal(t, errors.ErrorTypeInvalidKey, errors.TypeOf(err))
	assert.Equal(t, "Object key must be string: got int key 5 at $.a[1]", errors.UserFriendlyError(err))

	_, err = FromDynamic(map[int]string{1: "x"}, Options{})
	assert.ErrorIs(t, err, errors.ErrInvalidKey)
}

func TestFromDynamic_DuplicateRenderedKey(t *testing.T) {
	_, err := FromDynamic(map[any]any{"a": 1, label("a"): 2}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateKey)
}

func TestFromDynamic_UnsupportedType(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		message string
	}{
		{"struct", map[string]any{"first name": struct{ X int }{1}}, `Unsupported dynamic type: struct { X int }: {1} at $["first name"]`},
		{"complex", complex(1, 2), "Unsupported dynamic type: complex128: (1+2i) at $"},
		{"channel", []any{make(chan int)}, "Unsupported dynamic type: chan int"},
		{"bad json number", json.Number("abc"), "Unsupported dynamic type: json.Number: abc at $"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDynamic(tt.input, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrUnsupportedType)
			assert.Contains(t, errors.UserFriendlyError(err), tt.message)
		})
	}
}

func TestFromDynamic_NonFinitePolicy(t *testing.T) {
	got, err := FromDynamic(math.Inf(1), Options{})
	require.NoError(t, err)
	assert.Equal(t, value.KindF64, got.Kind())

	_, err = FromDynamic([]any{1.0, math.NaN()}, Options{RejectNonFinite: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNonFinite)
	assert.Equal(t, "Non-finite number rejected: NaN at $[1]", errors.UserFriendlyError(err))

	got, err = FromDynamic(2.5, Options{RejectNonFinite: true})
	require.NoError(t, err)
	assertValue(t, value.F64(2.5), got)
}

func TestRoundTrip_WideIntegers(t *testing.T) {
	largest := value.U64(math.MaxUint64)
	d, err := ToDynamic(largest)
	require.NoError(t, err)
	back := mustFromDynamic(t, d)
	assert.False(t, value.Equal(largest, back), "precision loss above 2^53 is expected, got %s", back)

	above := value.U64((1 << 53) + 1)
	d, err = ToDynamic(above)
	require.NoError(t, err)
	assert.False(t, value.Equal(above, mustFromDynamic(t, d)))

	small := value.U64(100)
	d, err = ToDynamic(small)
	require.NoError(t, err)
	assertValue(t, value.U8(100), mustFromDynamic(t, d))
}
