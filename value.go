package scaledstyle

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	// KindNumber is a plain number such as 20.
	KindNumber ValueKind = iota
	// KindString is never scaled ("100%", "center", "auto").
	KindString
	// KindPair is a device-class pair [compact, large].
	KindPair
	// KindOpaque holds anything else (nested objects, transform lists).
	// Opaque values are always passed through verbatim.
	KindOpaque
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindPair:
		return "pair"
	default:
		return "opaque"
	}
}

// Value is a raw or resolved style value.
//
// The zero Value is the number 0.
type Value struct {
	kind  ValueKind
	num   float64
	str   string
	slots []Value
	raw   any
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Pair returns a device-class pair. Slot 0 is used on compact devices and
// slot 1 on large devices. Pair slots must be numbers or strings; any other
// slot makes the whole value opaque.
func Pair(slots ...Value) Value {
	if len(slots) == 0 {
		return Opaque([]any{})
	}
	for _, s := range slots {
		if s.kind != KindNumber && s.kind != KindString {
			raw := make([]any, len(slots))
			for i, s := range slots {
				raw[i] = s.Interface()
			}
			return Opaque(raw)
		}
	}
	return Value{kind: KindPair, slots: append([]Value(nil), slots...)}
}

// Opaque wraps a value the engine never interprets.
func Opaque(v any) Value {
	return Value{kind: KindOpaque, raw: v}
}

// FromInterface converts a decoded JSON/YAML value into a Value.
// Lists of numbers and strings become pairs; everything else that is not a
// number or a string becomes opaque.
func FromInterface(x any) Value {
	switch v := x.(type) {
	case Value:
		return v
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return Number(f)
		}
		return String(v.String())
	case string:
		return String(v)
	case []any:
		slots := make([]Value, 0, len(v))
		for _, item := range v {
			slots = append(slots, FromInterface(item))
		}
		return Pair(slots...)
	default:
		return Opaque(x)
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Slots returns the pair slots held by v, or nil.
func (v Value) Slots() []Value {
	if v.kind != KindPair {
		return nil
	}
	return append([]Value(nil), v.slots...)
}

// Raw returns the opaque payload held by v, or nil.
func (v Value) Raw() any {
	return v.raw
}

// truthy mirrors the "absent or falsy" test used for the large slot:
// 0, NaN and "" are falsy.
func (v Value) truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0 && v.num == v.num
	case KindString:
		return v.str != ""
	case KindOpaque:
		return v.raw != nil
	default:
		return true
	}
}

// Equal reports whether two values hold the same data. Opaque values are
// compared by their JSON encoding.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindPair:
		if len(v.slots) != len(o.slots) {
			return false
		}
		for i := range v.slots {
			if !v.slots[i].Equal(o.slots[i]) {
				return false
			}
		}
		return true
	default:
		a, errA := json.Marshal(v.raw)
		b, errB := json.Marshal(o.raw)
		return errA == nil && errB == nil && string(a) == string(b)
	}
}

// Interface returns v as a plain Go value suitable for encoders.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindPair:
		out := make([]any, len(v.slots))
		for i, s := range v.slots {
			out[i] = s.Interface()
		}
		return out
	default:
		return v.raw
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindPair:
		parts := make([]string, len(v.slots))
		for i, s := range v.slots {
			parts[i] = s.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		b, err := json.Marshal(v.raw)
		if err != nil {
			return "<opaque>"
		}
		return string(b)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*v = FromInterface(x)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
