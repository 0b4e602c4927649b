package convert

import (
	"math"

	"github.com/mcncl/gbln/value"
)

// Range limits as float64. 2^64 and -2^63 are exact in float64; every other
// bound is below 2^53.
const (
	maxUint64Exclusive = 18446744073709551616.0 // 2^64
	minInt64           = -9223372036854775808.0 // -2^63
)

// InferNumber picks the tagged variant for a dynamic number with no schema:
//
//   - NaN, ±Inf and values with a fractional part become F64;
//   - integral values >= 0 become the smallest of U8, U16, U32, U64 holding them;
//   - integral values < 0 become the smallest of I8, I16, I32, I64 holding them;
//   - integral values outside the 64-bit range of their sign stay F64.
//
// Inference is local to n; callers that need a specific width must build the
// Value themselves.
func InferNumber(n float64) *value.Value {
	if !isIntegral(n) {
		return value.F64(n)
	}

	if n >= 0 {
		switch {
		case n <= math.MaxUint8:
			return value.U8(uint8(n))
		case n <= math.MaxUint16:
			return value.U16(uint16(n))
		case n <= math.MaxUint32:
			return value.U32(uint32(n))
		case n < maxUint64Exclusive:
			return value.U64(uint64(n))
		default:
			return value.F64(n)
		}
	}

	switch {
	case n >= math.MinInt8:
		return value.I8(int8(n))
	case n >= math.MinInt16:
		return value.I16(int16(n))
	case n >= math.MinInt32:
		return value.I32(int32(n))
	case n >= minInt64:
		return value.I64(int64(n))
	default:
		return value.F64(n)
	}
}

// isIntegral reports whether n is finite with a zero fractional part.
// For ±Inf the fractional part evaluates to NaN, which also fails.
func isIntegral(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	frac := n - math.Trunc(n)
	return frac == 0
}
