package utils

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// RawText renders a JSON value as opaque text: strings unquoted, null as nil,
// anything else as its compact JSON text.
func RawText(raw json.RawMessage) *string {
	if IsNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		out := string(bytes.TrimSpace(raw))
		return &out
	}
	out := buf.String()
	return &out
}

// JSONValue converts a raw JSON value to a column value; null becomes SQL NULL.
func JSONValue(raw json.RawMessage) datatypes.JSON {
	if IsNull(raw) {
		return nil
	}
	return datatypes.JSON(bytes.TrimSpace(raw))
}

// IsEmptyJSON reports whether raw is null, {}, [], "" or false.
func IsEmptyJSON(raw json.RawMessage) bool {
	if IsNull(raw) {
		return true
	}
	switch string(bytes.TrimSpace(raw)) {
	case "{}", "[]", `""`, "false", "0":
		return true
	}
	t := bytes.TrimSpace(raw)
	if t[0] == '{' || t[0] == '[' {
		var v any
		if err := json.Unmarshal(t, &v); err == nil {
			switch c := v.(type) {
			case map[string]any:
				return len(c) == 0
			case []any:
				return len(c) == 0
			}
		}
	}
	return false
}
