package normalize

import (
	"encoding/json"
	"strings"
)

// Failure indicates that no structured value could be recovered from an LLM
// reply. It carries the raw text so callers can feed it to a heuristic
// fallback or log it for diagnostics. It is an expected outcome, not a bug.
type Failure struct {
	Raw string
}

func (f *Failure) Error() string { return "no parsable JSON found in model reply" }

// Object recovers a JSON object embedded anywhere in raw. The reply may wrap
// the payload in prose or fenced code blocks; the first '{' through the last
// '}' is tried first, then the whole trimmed text.
func Object(raw string) (json.RawMessage, error) {
	return extract(raw, '{', '}')
}

// Array recovers a JSON array embedded anywhere in raw.
func Array(raw string) (json.RawMessage, error) {
	return extract(raw, '[', ']')
}

func extract(raw string, open, close byte) (json.RawMessage, error) {
	s := stripFences(strings.TrimSpace(raw))

	if i := strings.IndexByte(s, open); i >= 0 {
		if j := strings.LastIndexByte(s, close); j > i {
			candidate := s[i : j+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), nil
			}
		}
	}
	if json.Valid([]byte(s)) && len(s) > 0 && s[0] == open {
		return json.RawMessage(s), nil
	}
	return nil, &Failure{Raw: raw}
}

// stripFences removes a leading ```/```json marker and a trailing ``` if the
// reply is wrapped in a fenced code block.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = s[3:]
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// drop the language tag line, e.g. "json"
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// UnmarshalObject recovers an object from raw and decodes it into v.
func UnmarshalObject(raw string, v any) error {
	msg, err := Object(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, v); err != nil {
		return &Failure{Raw: raw}
	}
	return nil
}

// UnmarshalArray recovers an array from raw and decodes it into v.
func UnmarshalArray(raw string, v any) error {
	msg, err := Array(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, v); err != nil {
		return &Failure{Raw: raw}
	}
	return nil
}
