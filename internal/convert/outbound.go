package convert

import (
	"github.com/mcncl/gbln/internal/errors"
	"github.com/mcncl/gbln/internal/models"
	"github.com/mcncl/gbln/value"
)

// ToDynamic converts a tagged Value into host values: nil, bool, float64,
// string, models.Array and models.Object.
//
// Every numeric kind becomes float64. I64 and U64 magnitudes above 2^53 are
// rounded to the nearest float64 and do not round-trip exactly.
//
// The only failure is a rejected object assignment, which happens when a
// map holds the same key twice.
func ToDynamic(v *value.Value) (any, error) {
	return toDynamic(v, rootPath)
}

func toDynamic(v *value.Value, path string) (any, error) {
	k := v.Kind()
	switch {
	case k == value.KindNull:
		return nil, nil
	case k == value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case k.IsSigned():
		n, _ := v.AsInt()
		return float64(n), nil
	case k.IsUnsigned():
		n, _ := v.AsUint()
		return float64(n), nil
	case k.IsFloat():
		f, _ := v.AsFloat()
		return f, nil
	case k == value.KindStr:
		s, _ := v.AsStr()
		return s, nil
	case k == value.KindList:
		items, _ := v.AsList()
		arr := make(models.Array, 0, len(items))
		for i, item := range items {
			d, err := toDynamic(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, d)
		}
		return arr, nil
	case k == value.KindMap:
		entries, _ := v.AsMap()
		obj := make(models.Object, len(entries))
		for _, e := range entries {
			d, err := toDynamic(e.Value, keyPath(path, e.Key))
			if err != nil {
				return nil, err
			}
			if err := setProperty(obj, e.Key, d); err != nil {
				return nil, errors.NewAssignmentError(path, e.Key, err)
			}
		}
		return obj, nil
	default:
		return nil, errors.NewUnsupportedTypeError(path, v)
	}
}

// setProperty assigns a property once; a second assignment is rejected.
func setProperty(obj models.Object, key string, d any) error {
	if _, exists := obj[key]; exists {
		return errors.ErrDuplicateKey
	}
	obj[key] = d
	return nil
}
