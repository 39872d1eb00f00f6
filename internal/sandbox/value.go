package sandbox

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBlob
)

// Value is a single column value of dynamic scalar type. The shape of a row
// is determined entirely by the query's projection, so values carry their own
// type tag instead of a fixed schema.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// Row is an ordered sequence of column values.
type Row []Value

func NullValue() Value           { return Value{kind: KindNull} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func TextValue(s string) Value   { return Value{kind: KindText, s: s} }
func BlobValue(b []byte) Value   { return Value{kind: KindBlob, b: b} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// MarshalJSON renders the value as its natural JSON scalar: null, number,
// string, or base64 text for blobs.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindText:
		return json.Marshal(v.s)
	case KindBlob:
		return json.Marshal(v.b)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// String renders the value for terminal display.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindText:
		return v.s
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.b)
	default:
		return "?"
	}
}

// fromDriver converts a database/sql driver value into a tagged Value.
func fromDriver(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return NullValue()
	case int64:
		return IntValue(x)
	case float64:
		return FloatValue(x)
	case string:
		return TextValue(x)
	case []byte:
		// The driver may reuse the buffer between scans.
		b := make([]byte, len(x))
		copy(b, x)
		return BlobValue(b)
	case bool:
		if x {
			return IntValue(1)
		}
		return IntValue(0)
	case time.Time:
		return TextValue(x.Format(time.RFC3339))
	default:
		return TextValue(fmt.Sprintf("%v", x))
	}
}
