package pricing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the loosely typed numeric fields
// found in quotation payloads: numbers, numeric strings, empty strings and
// null all decode without error. Anything unparseable becomes 0 so that an
// in-progress form never breaks a running total.
type FlexFloat float64

// UnmarshalJSON decodes a number, a quoted number, null or garbage into a
// float64, defaulting to 0.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is the integer counterpart of FlexFloat. Fractions are truncated.
type FlexInt int

// UnmarshalJSON decodes a number, a quoted number, null or garbage into an
// int, defaulting to 0.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(f)
	return nil
}

// Int returns the underlying value.
func (i FlexInt) Int() int {
	return int(i)
}
