package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a decoded JSON scalar to int.
// It handles numbers (json.Number, float64, int kinds), numeric strings and bools.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return ToInt(f)
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		return ToInt(json.Number(s))
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToBool converts a decoded JSON scalar to bool.
// Numbers are true when non-zero; strings accept "1", "true", "yes".
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return false, err
		}
		return f != 0, nil
	case float64:
		return v != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			return true, nil
		case "0", "false", "no", "":
			return false, nil
		}
		return false, fmt.Errorf("cannot convert %q to bool", v)
	default:
		return false, fmt.Errorf("cannot convert %T to bool", val)
	}
}

// FlexInt is an int that also decodes from numeric strings.
// Upstream feeds are not consistent about quoting ids.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil || v == nil {
		return err
	}
	i, err := ToInt(v)
	if err != nil {
		return err
	}
	*f = FlexInt(i)
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }

// FlexBool is a bool that also decodes from 0/1 and string forms.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil || v == nil {
		return err
	}
	b, err := ToBool(v)
	if err != nil {
		return err
	}
	*f = FlexBool(b)
	return nil
}

// Bool returns the plain bool value.
func (f FlexBool) Bool() bool { return bool(f) }

func decodeScalar(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
