package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Document is an untyped JSON object as returned by the forum API.
// Accessors never panic: a missing key or a value of the wrong type
// yields the supplied default.
type Document map[string]any

// Int returns the integer at key, or def.
// JSON numbers may arrive as float64, json.Number, or numeric strings.
func (d Document) Int(key string, def int) int {
	val, ok := d[key]
	if !ok || val == nil {
		return def
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return def
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

// String returns the string at key, or def.
func (d Document) String(key, def string) string {
	val, ok := d[key]
	if !ok {
		return def
	}
	s, ok := val.(string)
	if !ok {
		return def
	}
	return s
}

// Bool returns the boolean at key, or def.
func (d Document) Bool(key string, def bool) bool {
	val, ok := d[key]
	if !ok {
		return def
	}
	b, ok := val.(bool)
	if !ok {
		return def
	}
	return b
}

// Strings returns the list of names at key, preserving order.
// Elements may be plain strings or objects carrying a "name" key
// (Discourse sends either depending on the site's tag settings).
// Always returns a non-nil slice.
func (d Document) Strings(key string) []string {
	items, ok := d[key].([]any)
	if !ok {
		if strs, ok := d[key].([]string); ok {
			out := make([]string, len(strs))
			copy(out, strs)
			return out
		}
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if name := Document(v).String("name", ""); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// Object returns the nested object at key, or an empty Document.
func (d Document) Object(key string) Document {
	switch v := d[key].(type) {
	case map[string]any:
		return Document(v)
	case Document:
		return v
	default:
		return Document{}
	}
}

// Objects returns the list of objects at key, skipping non-object elements.
// Always returns a non-nil slice.
func (d Document) Objects(key string) []Document {
	items, ok := d[key].([]any)
	if !ok {
		return []Document{}
	}

	out := make([]Document, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Document(m))
		}
	}
	return out
}
