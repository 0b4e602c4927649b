package convert

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"

	"github.com/mcncl/gbln/internal/errors"
	"github.com/mcncl/gbln/internal/models"
	"github.com/mcncl/gbln/value"
)

// Options tunes the inbound conversion.
type Options struct {
	// RejectNonFinite fails on NaN and ±Inf instead of producing F64.
	RejectNonFinite bool
}

// FromDynamic converts a host value into a tagged Value.
//
// Recognized inputs are nil and models.Undefined (null), bool, every Go
// numeric kind and json.Number (read as float64, then InferNumber), strings,
// slices and arrays (list) and maps with string keys (map). Sequences are
// classified before objects. Map entries are emitted in sorted key order.
// Any other input fails with an unsupported-type error, and a map key that
// is not a string fails with an invalid-key error.
func FromDynamic(d any, opts Options) (*value.Value, error) {
	in := inbound{opts: opts}
	return in.convert(d, rootPath)
}

type inbound struct {
	opts Options
}

func (in *inbound) convert(d any, path string) (*value.Value, error) {
	switch v := d.(type) {
	case nil:
		return value.Null(), nil
	case models.UndefinedType:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case float64:
		return in.number(v, path)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil, errors.NewUnsupportedTypeError(path, v)
		}
		return in.number(n, path)
	case string:
		return value.Str(v), nil
	case []any:
		items := make([]*value.Value, 0, len(v))
		for i, elem := range v {
			item, err := in.convert(elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case map[string]any:
		return in.object(v, path)
	default:
		return in.convertReflect(reflect.ValueOf(d), d, path)
	}
}

// convertReflect handles named types, other numeric kinds, typed slices and
// maps whose static type is not one of the fast-path cases above.
func (in *inbound) convertReflect(rv reflect.Value, d any, path string) (*value.Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return in.convert(rv.Elem().Interface(), path)
	case reflect.Bool:
		return value.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return in.number(float64(rv.Int()), path)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return in.number(float64(rv.Uint()), path)
	case reflect.Float32, reflect.Float64:
		return in.number(rv.Float(), path)
	case reflect.String:
		return value.Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]*value.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := in.convert(rv.Index(i).Interface(), indexPath(path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case reflect.Map:
		return in.reflectObject(rv, path)
	default:
		return nil, errors.NewUnsupportedTypeError(path, d)
	}
}

func (in *inbound) number(n float64, path string) (*value.Value, error) {
	if in.opts.RejectNonFinite && (math.IsNaN(n) || math.IsInf(n, 0)) {
		return nil, errors.NewNonFiniteError(path, n)
	}
	return InferNumber(n), nil
}

func (in *inbound) object(obj map[string]any, path string) (*value.Value, error) {
	// Sort keys so the entry order does not depend on map iteration.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]value.Entry, 0, len(keys))
	for _, key := range keys {
		v, err := in.convert(obj[key], keyPath(path, key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry{Key: key, Value: v})
	}
	return value.Map(entries...), nil
}

func (in *inbound) reflectObject(rv reflect.Value, path string) (*value.Value, error) {
	type pending struct {
		key  string
		elem reflect.Value
	}

	items := make([]pending, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		if k.Kind() != reflect.String {
			return nil, errors.NewInvalidKeyError(path, iter.Key().Interface())
		}
		items = append(items, pending{key: k.String(), elem: iter.Value()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].key < items[j].key })

	entries := make([]value.Entry, 0, len(items))
	for i, item := range items {
		// Distinct keys of different string types can render the same text.
		if i > 0 && items[i-1].key == item.key {
			return nil, errors.NewDuplicateKeyError(path, item.key)
		}
		v, err := in.convert(item.elem.Interface(), keyPath(path, item.key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry{Key: item.key, Value: v})
	}
	return value.Map(entries...), nil
}
