// Package gbln bridges GBLN documents and dynamic Go values.
//
// A dynamic value is what encoding/json produces for untyped input: nil,
// bool, float64, string, []any and map[string]any. GBLN values carry an
// explicit type tag (u8, i16, f64, s64, ...) that the dynamic side does not
// have, so the two directions are asymmetric:
//
//	Parse        GBLN text   -> dynamic tree (every number becomes float64)
//	ToString     dynamic tree -> compact GBLN (numbers are narrowed)
//	ToStringPretty dynamic tree -> indented GBLN
//
// # Number narrowing
//
// Numbers coming from the dynamic side have no width, so the smallest
// variant that holds them is chosen:
//
//	0..255          -> u8       -1..-128     -> i8
//	256..65535      -> u16      -129..-32768 -> i16
//	3.14, NaN, Inf  -> f64
//
// InferNumber exposes the rule. Callers that need exact widths use
// DecodeValue and EncodeValue, which work on *value.Value directly.
//
// # Configuration
//
// The package-level functions use defaults. A Bridge built with New accepts
// a config.Config (usually loaded from .gbln.yml), a custom Codec and a
// *zap.Logger:
//
//	cfg, err := config.LoadConfig(config.FindConfigFile())
//	if err != nil {
//	    return err
//	}
//	b, err := gbln.New(gbln.WithConfig(cfg))
//
// # Errors
//
// Every failure is a *Error whose Message is ready to show to a user, for
// example "Parse error: unknown type tag \"x9\" at 1:2". Use errors.Is with
// ErrDecode, ErrUnsupportedType, ErrInvalidKey, ErrAssignment, ErrNonFinite
// or ErrConfig to branch on the kind.
package gbln
