package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric body field that also accepts numeric strings such as "72",
// which is what HTML number inputs submit. An empty string counts as not given.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num)
	return nil
}

// Float64 parses the value. ok is false when the value is empty.
func (n Number) Float64() (value float64, ok bool, err error) {
	if n == "" {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true, fmt.Errorf("%q is not a number", string(n))
	}
	return value, true, nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// blankToNil trims *p and clears it when nothing is left
func blankToNil(p **string) {
	if *p == nil {
		return
	}
	v := strings.TrimSpace(**p)
	if v == "" {
		*p = nil
		return
	}
	*p = &v
}
