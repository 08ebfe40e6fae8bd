package postgres

import "encoding/json"

// List-valued fields (skills, requirements, dimensions) live in single TEXT
// columns as serialized JSON. An empty or missing value must round-trip to an
// empty value, never to a parse error or null.

func encodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func encodeDimensions(dims map[string]int) string {
	if len(dims) == 0 {
		return "{}"
	}
	b, err := json.Marshal(dims)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func decodeDimensions(raw string) map[string]int {
	if raw == "" || raw == "{}" {
		return nil
	}
	var out map[string]int
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
