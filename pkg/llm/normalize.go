package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotJSON is returned when a model reply cannot be parsed as JSON even
// after fence stripping and best-effort extraction.
var ErrNotJSON = errors.New("model reply is not valid JSON")

// StripFences removes a leading ```json or ``` marker and a trailing ```
// from a model reply and trims surrounding whitespace. Replies without
// fences pass through unchanged.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// DecodeObject parses a model reply into v after fence stripping.
// If strict parsing fails it retries on the outermost {...} slice, which
// recovers replies that wrap JSON in prose.
func DecodeObject(raw string, v any) error {
	clean := StripFences(raw)
	if err := json.Unmarshal([]byte(clean), v); err == nil {
		return nil
	}
	if i := strings.Index(clean, "{"); i >= 0 {
		if j := strings.LastIndex(clean, "}"); j > i {
			if err := json.Unmarshal([]byte(clean[i:j+1]), v); err == nil {
				return nil
			}
		}
	}
	return ErrNotJSON
}

// DecodeArray parses a model reply into out (a pointer to a slice) after
// fence stripping. A reply holding a single JSON object instead of an array
// is wrapped into a one-element array. If strict parsing fails it retries on
// the outermost [...] slice.
func DecodeArray(raw string, out any) error {
	clean := StripFences(raw)
	if err := json.Unmarshal([]byte(clean), out); err == nil {
		return nil
	}
	if strings.HasPrefix(clean, "{") {
		if err := json.Unmarshal([]byte("["+clean+"]"), out); err == nil {
			return nil
		}
	}
	if i := strings.Index(clean, "["); i >= 0 {
		if j := strings.LastIndex(clean, "]"); j > i {
			if err := json.Unmarshal([]byte(clean[i:j+1]), out); err == nil {
				return nil
			}
		}
	}
	return ErrNotJSON
}
