// README: Common money value object used across modules.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Amount is a rupee amount. Decoding never fails: anything that is not a
// finite number (or a string starting with one) becomes 0.
type Amount float64

// leadingNumber matches the numeric prefix a form field starts with.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount coerces free-form input the way the booking forms do: the
// longest leading number is used, so "12 km" is 12 and "abc" is 0.
func ParseAmount(s string) Amount {
	num := leadingNumber.FindString(strings.TrimSpace(s))
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(v)
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(b))
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

// NonNegative clamps negative values to zero.
func (a Amount) NonNegative() Amount {
	if a < 0 {
		return 0
	}
	return a
}

// Rupees formats the amount as "Rs 1234.50".
func (a Amount) Rupees() string {
	return fmt.Sprintf("Rs %.2f", float64(a))
}
