// Package envelope normalizes the loosely shaped JSON envelopes the backend
// returns. Endpoints disagree on wrapping: some return a bare array, some
// {"data": [...]}, some {"students": [...]}, some {"data": {"students":
// [...]}}. Extraction tries each known shape in order and degrades to an
// empty result instead of failing.
package envelope

import (
	"bytes"
	"encoding/json"
)

const dataKey = "data"

// List extracts the canonical entity list from a response body. key is the
// entity-specific wrapper name ("students", "professors", "classes").
// Malformed or unrecognized bodies yield an empty list, never an error.
func List(raw []byte, key string) []json.RawMessage {
	if arr, ok := asArray(raw); ok {
		return arr
	}
	obj, ok := asObject(raw)
	if !ok {
		return nil
	}
	if arr, ok := asArray(obj[dataKey]); ok {
		return arr
	}
	if arr, ok := asArray(obj[key]); ok {
		return arr
	}
	if inner, ok := asObject(obj[dataKey]); ok {
		if arr, ok := asArray(inner[key]); ok {
			return arr
		}
	}
	return nil
}

// Object extracts a single entity object from a response body. Returns nil
// when no candidate shape matches.
func Object(raw []byte, key string) json.RawMessage {
	obj, ok := asObject(raw)
	if !ok || len(obj) == 0 {
		return nil
	}
	if v, ok := obj[key]; ok && isObject(v) {
		return v
	}
	if v, ok := obj[dataKey]; ok && isObject(v) {
		if inner, ok := asObject(v); ok {
			if nested, ok := inner[key]; ok && isObject(nested) {
				return nested
			}
		}
		return v
	}
	return raw
}

func asArray(raw []byte) ([]json.RawMessage, bool) {
	if !startsWith(raw, '[') {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

func asObject(raw []byte) (map[string]json.RawMessage, bool) {
	if !startsWith(raw, '{') {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func isObject(raw []byte) bool { return startsWith(raw, '{') }

func startsWith(raw []byte, c byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == c
}
