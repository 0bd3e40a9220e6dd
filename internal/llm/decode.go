package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// DecodeJSONObject parses a model reply into a JSON object. Providers
// without constrained output sometimes wrap the JSON in a fenced code
// block; that wrapper is stripped before parsing. Anything that is not a
// JSON object after that is an error.
func DecodeJSONObject(raw []byte) (map[string]any, error) {
	s := strings.TrimSpace(string(raw))
	if m := reFence.FindStringSubmatch(s); m != nil {
		s = m[1]
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return out, nil
}
