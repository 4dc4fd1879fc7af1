// Package kv implements the flat text persistence format shared by the
// settings, session, and per-workload stats files.
//
// A file is a sequence of "KEY: VALUE" lines. Values carry one of three
// types - boolean, number, or string - inferred on load and preserved on
// save, so a save/load round trip reproduces every entry with the same type.
package kv

import "strconv"

// Kind identifies the inferred type of a Value.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
)

// Value is the tagged union stored against each key. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
}

// BoolValue wraps b as a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NumberValue wraps n as a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// StringValue wraps s as a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Int returns the value as an int64. Booleans map to 0/1; strings that are
// not numeric return 0.
func (v Value) Int() int64 {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return 1
		}
		return 0
	case KindNumber:
		return int64(v.Num)
	default:
		n, _ := strconv.ParseFloat(v.Str, 64)
		return int64(n)
	}
}

// Decode infers a Value from its textual form. Exactly "true" or "false"
// becomes a boolean, anything numeric becomes a number, everything else
// stays a string.
func Decode(raw string) Value {
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberValue(n)
	}
	return StringValue(raw)
}

// Encode renders a Value to the textual form Decode recovers it from.
func (v Value) Encode() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}
