package evaluator

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type valueKind int

const (
	valueNull valueKind = iota
	valueBool
	valueNumber
	valueString
	valueArray
	valueRecord
	valueFunction
)

var (
	nullValue  = Value{kind: valueNull}
	trueValue  = Value{kind: valueBool, value: true}
	falseValue = Value{kind: valueBool, value: false}
)

// Value is a runtime value, a tagged union over the kinds the language
// can produce.
type Value struct {
	value any
	kind  valueKind
}

func boolValue(b bool) Value {
	if b {
		return trueValue
	}
	return falseValue
}

func numberValue(f float64) Value {
	return Value{kind: valueNumber, value: f}
}

func stringValue(s string) Value {
	return Value{kind: valueString, value: s}
}

func arrayValue(elems []Value) Value {
	return Value{kind: valueArray, value: elems}
}

func recordValue(fields map[string]Value) Value {
	return Value{kind: valueRecord, value: fields}
}

func closureValue(c *closure) Value {
	return Value{kind: valueFunction, value: c}
}

func builtinValue(b *builtin) Value {
	return Value{kind: valueFunction, value: b}
}

// Unexported accessors assume the kind has been checked.

func (v Value) bool() bool               { return v.value.(bool) }
func (v Value) number() float64          { return v.value.(float64) }
func (v Value) str() string              { return v.value.(string) }
func (v Value) array() []Value           { return v.value.([]Value) }
func (v Value) record() map[string]Value { return v.value.(map[string]Value) }

func (v Value) IsNull() bool     { return v.kind == valueNull }
func (v Value) IsBool() bool     { return v.kind == valueBool }
func (v Value) IsNumber() bool   { return v.kind == valueNumber }
func (v Value) IsString() bool   { return v.kind == valueString }
func (v Value) IsArray() bool    { return v.kind == valueArray }
func (v Value) IsRecord() bool   { return v.kind == valueRecord }
func (v Value) IsFunction() bool { return v.kind == valueFunction }

func (v Value) AsBool() (bool, bool) {
	if v.kind != valueBool {
		return false, false
	}
	return v.bool(), true
}

func (v Value) AsNumber() (float64, bool) {
	if v.kind != valueNumber {
		return 0, false
	}
	return v.number(), true
}

func (v Value) AsString() (string, bool) {
	if v.kind != valueString {
		return "", false
	}
	return v.str(), true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != valueArray {
		return nil, false
	}
	return v.array(), true
}

func (v Value) AsRecord() (map[string]Value, bool) {
	if v.kind != valueRecord {
		return nil, false
	}
	return v.record(), true
}

// TypeName returns the language-level name of v's kind, as reported by
// std.typeof.
func (v Value) TypeName() string {
	switch v.kind {
	case valueNull:
		return "Null"
	case valueBool:
		return "Bool"
	case valueNumber:
		return "Number"
	case valueString:
		return "String"
	case valueArray:
		return "Array"
	case valueRecord:
		return "Record"
	case valueFunction:
		return "Function"
	}
	return "Unknown"
}

// Equals is structural equality. Function values never compare equal;
// the `==` operator rejects them before getting here.
func (v Value) Equals(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case valueNull:
		return true
	case valueBool:
		return v.bool() == o.bool()
	case valueNumber:
		return v.number() == o.number()
	case valueString:
		return v.str() == o.str()
	case valueArray:
		a, b := v.array(), o.array()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equals(b[i]) {
				return false
			}
		}
		return true
	case valueRecord:
		a, b := v.record(), o.record()
		if len(a) != len(b) {
			return false
		}
		for name, av := range a {
			bv, ok := b[name]
			if !ok || !av.Equals(bv) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v for debugging: strings quoted, record fields in sorted
// name order so output is deterministic. Interpolation uses
// ToDisplayString instead, which is stricter.
func (v Value) String() string {
	switch v.kind {
	case valueNull:
		return "null"
	case valueBool:
		return strconv.FormatBool(v.bool())
	case valueNumber:
		return formatNumber(v.number())
	case valueString:
		return strconv.Quote(v.str())
	case valueArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.array() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case valueRecord:
		fields := v.record()
		names := maps.Keys(fields)
		slices.Sort(names)
		var sb strings.Builder
		sb.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			sb.WriteString(" = ")
			sb.WriteString(fields[name].String())
		}
		sb.WriteByte('}')
		return sb.String()
	case valueFunction:
		if b, ok := v.value.(*builtin); ok {
			return "<builtin " + b.name + ">"
		}
		return "<function>"
	}
	return "<unknown>"
}
