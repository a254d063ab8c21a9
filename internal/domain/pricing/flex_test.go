package pricing

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`1234.5`, 1234.5},
		{`"1234.5"`, 1234.5},
		{`" 500 "`, 500},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`{"nested":true}`, 0},
	}
	for _, tc := range cases {
		var f FlexFloat
		if err := json.Unmarshal([]byte(tc.raw), &f); err != nil {
			t.Fatalf("FlexFloat must never error, got %v for %s", err, tc.raw)
		}
		if f.Float64() != tc.want {
			t.Fatalf("FlexFloat(%s) = %v, want %v", tc.raw, f.Float64(), tc.want)
		}
	}
}

func TestFlexIntCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`3`, 3},
		{`"7"`, 7},
		{`2.9`, 2},
		{`"x"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var i FlexInt
		if err := json.Unmarshal([]byte(tc.raw), &i); err != nil {
			t.Fatalf("FlexInt must never error, got %v for %s", err, tc.raw)
		}
		if i.Int() != tc.want {
			t.Fatalf("FlexInt(%s) = %d, want %d", tc.raw, i.Int(), tc.want)
		}
	}
}
