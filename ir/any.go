package ir

import (
	"fmt"
	"math"
)

// FromAny converts a plain Go value of the kind produced by generic JSON or
// YAML unmarshaling (nil, bool, string, numbers, []any, map[string]any) into
// a node tree. Object keys are sorted; key order carries no meaning in the
// tree model.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloaty(float64(x)), nil
	case float64:
		return fromFloaty(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported map key %v (%T)", k, k)
			}
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[ks] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("number %d overflows int64", u)
	}
	return FromInt(int64(u)), nil
}

// fromFloaty stores integral floats as ints. Generic JSON unmarshaling
// produces float64 for every number, so this is where "746419440" gets its
// integer representation back. math.MaxInt64 rounds up to 2^63 as a
// float64, so the upper bound must be strict against 2^63 itself.
func fromFloaty(f float64) *Node {
	if f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f < math.MaxInt64+1 {
		return FromInt(int64(f))
	}
	return FromFloat(f)
}

// ToAny converts a node tree back into plain Go values, the inverse of
// FromAny up to object key order.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	default:
		return nil
	}
}
