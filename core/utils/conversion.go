package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts loosely typed request values to int.
// It accepts integer and whole float types, numeric strings and byte slices.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case float32:
		return ToInt(float64(v))
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case []byte:
		return ToInt(string(v))
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToBool converts loosely typed request values to bool.
// Numbers are true when non-zero; strings accept what strconv.ParseBool does
// plus "yes", "no", "on" and "off".
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		return strconv.ParseBool(strings.TrimSpace(v))
	case []byte:
		return ToBool(string(v))
	case nil:
		return false, fmt.Errorf("missing value")
	default:
		i, err := ToInt(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert %T to bool", val)
		}
		return i != 0, nil
	}
}
