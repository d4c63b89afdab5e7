package models

import (
	"encoding/json"
	"testing"
)

func TestNumberMarshalKeepsIntegerForm(t *testing.T) {
	tests := []struct {
		name string
		n    *Number
		want string
	}{
		{"integer volume", Int(4873623), "4873623"},
		{"percent change", Float(3.3), "3.3"},
		{"negative percent", Float(-1.9), "-1.9"},
		{"whole-valued float", Float(2), "2"},
		{"null", nil, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.n)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestNumberUnmarshalRoundTrip(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte("4873623"), &n); err != nil {
		t.Fatalf("unmarshal int: %v", err)
	}
	if n.IsFloat() || n.Int64() != 4873623 {
		t.Errorf("decoded %v as float=%v", n.Int64(), n.IsFloat())
	}

	if err := json.Unmarshal([]byte("3.3"), &n); err != nil {
		t.Fatalf("unmarshal float: %v", err)
	}
	if !n.IsFloat() || n.Float64() != 3.3 {
		t.Errorf("decoded %v as float=%v", n.Float64(), n.IsFloat())
	}
}

func TestNumberArg(t *testing.T) {
	if got := Int(12).Arg(); got != int64(12) {
		t.Errorf("int arg = %v (%T)", got, got)
	}
	if got := Float(0.4).Arg(); got != 0.4 {
		t.Errorf("float arg = %v (%T)", got, got)
	}
	var null *Number
	if got := null.Arg(); got != nil {
		t.Errorf("nil arg = %v", got)
	}
}

func TestNumberEqual(t *testing.T) {
	if !Int(5).Equal(Int(5)) {
		t.Error("equal ints differ")
	}
	if Int(5).Equal(Float(5)) {
		t.Error("int equals float of same value")
	}
	var null *Number
	if Int(5).Equal(null) || null.Equal(Int(5)) {
		t.Error("value equals null")
	}
	if !null.Equal(nil) {
		t.Error("null differs from null")
	}
}
