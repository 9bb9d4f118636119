package upsell

import (
	"encoding/json"
	"strings"
)

// RawSuggestion is one entry of the provider's JSON array, before
// its item_name is resolved against the catalog.
type RawSuggestion struct {
	ItemName   string  `json:"item_name"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// ExtractJSONArray returns the outermost [...] span within text.
// Models routinely wrap the payload in code fences or prose; the
// span from the first '[' to the last ']' is what gets parsed.
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")

	if start == -1 || end == -1 || end <= start {
		return "", false
	}

	return text[start : end+1], true
}

// ParseSuggestions extracts and decodes the suggestion array from
// the provider's raw text. Any shape problem is ErrParse — the
// caller falls back, it never sees partial garbage.
func ParseSuggestions(text string) ([]RawSuggestion, error) {
	span, ok := ExtractJSONArray(text)
	if !ok {
		return nil, ErrParse
	}

	var out []RawSuggestion
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, ErrParse
	}

	return out, nil
}
