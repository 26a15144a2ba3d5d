package backend

import (
	"bytes"
	"encoding/json"
)

// The backend wraps collections inconsistently across endpoints: a bare
// array, {"items": [...]}, {"categories": [...]}, or any of those nested
// under {"data": ...}. NormalizeList unwraps all of them to the inner array.
// An unrecognized shape returns nil so callers degrade to an empty list.
func NormalizeList(raw json.RawMessage, keys ...string) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '[' {
		return trimmed
	}

	if trimmed[0] != '{' {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil
	}

	if data, ok := obj["data"]; ok {
		if out := NormalizeList(data, keys...); out != nil {
			return out
		}
	}

	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if out := NormalizeList(v, keys...); out != nil {
				return out
			}
		}
	}

	return nil
}

// NormalizeObject unwraps a single entity from an optional {"data": {...}}
// envelope.
func NormalizeObject(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return trimmed
	}

	if data, ok := obj["data"]; ok {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			return data
		}
	}

	return trimmed
}

// DecodeList normalizes a collection envelope and unmarshals it into dst
// (a pointer to a slice). An unrecognized shape leaves dst untouched.
func DecodeList(raw json.RawMessage, dst any, keys ...string) error {
	list := NormalizeList(raw, keys...)
	if list == nil {
		return nil
	}

	return json.Unmarshal(list, dst)
}
