package vdom

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Stringify converts a primitive value to the string which will be written
// to live text nodes, comments and attributes:
//
//     string                 → the string itself
//     integers, *big.Int     → decimal representation
//     floats                 → shortest representation, exponent form outside [1e-7, 1e21)
//     bool                   → "true" or "false"
//     nil and anything else  → ""
//
func Stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case *big.Int:
		if x == nil {
			return ""
		}
		return x.String()
	case big.Int:
		return x.String()
	}
	tracer().Debugf("value of type %T stringifies to empty string", v)
	return ""
}

// IsPrimitive is true for every type Stringify converts to a non-empty
// representation (strings may still be empty).
func IsPrimitive(v interface{}) bool {
	switch v.(type) {
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, *big.Int, big.Int:
		return true
	}
	return false
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0" // includes negative zero
	}
	if abs := math.Abs(f); abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	s = strings.Replace(s, "e+0", "e+", 1)
	return strings.Replace(s, "e-0", "e-", 1)
}
