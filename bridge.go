package gbln

import (
	"go.uber.org/zap"

	"github.com/mcncl/gbln/config"
	"github.com/mcncl/gbln/internal/codec"
	"github.com/mcncl/gbln/internal/convert"
	"github.com/mcncl/gbln/internal/errors"
	"github.com/mcncl/gbln/value"
)

// Codec reads and writes the textual form of a Value.
type Codec interface {
	Decode(text string) (*value.Value, error)
	Encode(v *value.Value) string
	EncodePretty(v *value.Value) string
}

// Bridge converts between GBLN text and dynamic Go values. It is immutable
// after New and safe for concurrent use.
type Bridge struct {
	codec  Codec
	opts   convert.Options
	logger *zap.Logger
}

// Option configures a Bridge.
type Option func(*options)

type options struct {
	cfg    *config.Config
	codec  Codec
	logger *zap.Logger
}

// WithConfig applies cfg. Without it the bridge uses config.NewConfig().
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithCodec replaces the built-in GBLN codec.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets the logger for this bridge instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a Bridge. The config is validated; with dev.debug set and no
// logger supplied, a development logger is built.
func New(opts ...Option) (*Bridge, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.cfg
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, boundaryError(err)
	}

	b := &Bridge{
		codec:  o.codec,
		opts:   convert.Options{RejectNonFinite: cfg.RejectNonFinite()},
		logger: o.logger,
	}
	if b.codec == nil {
		b.codec = codec.New(cfg.IndentString())
	}
	if b.logger == nil && cfg.Dev.Debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, boundaryError(errors.NewConfigError("failed to build debug logger", err))
		}
		b.logger = l
	}

	return b, nil
}

func (b *Bridge) log() *zap.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

// Parse decodes text and converts the result to a dynamic tree. Numbers
// become float64, maps map[string]any and lists []any.
func (b *Bridge) Parse(text string) (any, error) {
	v, err := b.DecodeValue(text)
	if err != nil {
		return nil, err
	}

	d, err := convert.ToDynamic(v)
	if err != nil {
		return nil, b.fail("parse", err)
	}

	b.log().Debug("parsed document",
		zap.Int("bytes", len(text)),
		zap.Stringer("kind", v.Kind()),
	)
	return d, nil
}

// ToString converts d and encodes it compactly.
func (b *Bridge) ToString(d any) (string, error) {
	return b.Encode(d, false)
}

// ToStringPretty converts d and encodes it one member per line.
func (b *Bridge) ToStringPretty(d any) (string, error) {
	return b.Encode(d, true)
}

// Encode converts d, narrowing every number with InferNumber, and encodes
// the result.
func (b *Bridge) Encode(d any, pretty bool) (string, error) {
	v, err := convert.FromDynamic(d, b.opts)
	if err != nil {
		return "", b.fail("encode", err)
	}

	text := b.EncodeValue(v, pretty)
	b.log().Debug("encoded document",
		zap.Stringer("kind", v.Kind()),
		zap.Bool("pretty", pretty),
		zap.Int("bytes", len(text)),
	)
	return text, nil
}

// DecodeValue decodes text without the dynamic conversion, keeping every
// type tag.
func (b *Bridge) DecodeValue(text string) (*value.Value, error) {
	v, err := b.codec.Decode(text)
	if err != nil {
		return nil, b.fail("decode", errors.NewDecodeError(err))
	}
	return v, nil
}

// EncodeValue encodes v as is.
func (b *Bridge) EncodeValue(v *value.Value, pretty bool) string {
	if pretty {
		return b.codec.EncodePretty(v)
	}
	return b.codec.Encode(v)
}

func (b *Bridge) fail(op string, err error) *Error {
	bErr := boundaryError(err)
	b.log().Debug("conversion failed",
		zap.String("op", op),
		zap.String("kind", string(bErr.Kind)),
		zap.Error(err),
	)
	return bErr
}
