package sandbox

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValueMarshalJSON(t *testing.T) {
	row := Row{
		NullValue(),
		IntValue(42),
		FloatValue(2.5),
		TextValue("hi"),
		BlobValue([]byte{0xde, 0xad}),
	}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[null,42,2.5,"hi","3q0="]`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestFromDriver(t *testing.T) {
	if v := fromDriver(nil); v.Kind() != KindNull {
		t.Errorf("nil -> %v, want null", v.Kind())
	}
	if v := fromDriver(int64(7)); v.Kind() != KindInt {
		t.Errorf("int64 -> %v, want int", v.Kind())
	}
	if v := fromDriver(true); v.Kind() != KindInt || v.String() != "1" {
		t.Errorf("true -> %v %q, want int 1", v.Kind(), v.String())
	}
	if v := fromDriver(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)); v.Kind() != KindText {
		t.Errorf("time -> %v, want text", v.Kind())
	}
}

func TestFromDriverCopiesBlob(t *testing.T) {
	buf := []byte{1, 2, 3}
	v := fromDriver(buf)
	buf[0] = 9

	data, _ := json.Marshal(v)
	want, _ := json.Marshal([]byte{1, 2, 3})
	if string(data) != string(want) {
		t.Errorf("blob = %s, want %s (driver buffer was mutated)", data, want)
	}
}
