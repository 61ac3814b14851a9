package genai

import (
	"encoding/json"
	"strings"
)

// Normalize extracts a plain text string from whatever shape an upstream
// call returned. The API generations this relay talks to disagree on where
// the generated text lives, so the probes run in a fixed priority order:
//
//  1. top-level "text" string
//  2. top-level "output" string
//  3. "outputs" list whose first element is an object: "content", "text",
//     "output" keys in that order
//  4. "candidates" list: first element's "output", then its "text"
//  5. "outputs" list whose first element is a plain string
//  6. string form of the whole payload
//
// Normalize never fails. Each field is decoded independently, so a malformed
// value under one key cannot mask a usable value under a later one.
func Normalize(raw json.RawMessage) string {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rawString(raw)
	}

	if s, ok := stringField(fields, "text"); ok {
		return s
	}
	if s, ok := stringField(fields, "output"); ok {
		return s
	}

	outputs := listField(fields, "outputs")
	if len(outputs) > 0 {
		if obj, ok := objectElem(outputs[0]); ok {
			for _, key := range []string{"content", "text", "output"} {
				if s, ok := stringField(obj, key); ok {
					return s
				}
			}
		}
	}

	if candidates := listField(fields, "candidates"); len(candidates) > 0 {
		if obj, ok := objectElem(candidates[0]); ok {
			if s, ok := stringField(obj, "output"); ok {
				return s
			}
			if s, ok := stringField(obj, "text"); ok {
				return s
			}
		}
	}

	if len(outputs) > 0 {
		var s string
		if err := json.Unmarshal(outputs[0], &s); err == nil {
			return s
		}
	}

	return rawString(raw)
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	v, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

func listField(fields map[string]json.RawMessage, key string) []json.RawMessage {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(v, &list); err != nil {
		return nil
	}
	return list
}

func objectElem(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// rawString is the last-resort representation of an upstream payload.
func rawString(raw json.RawMessage) string {
	return strings.TrimSpace(string(raw))
}
