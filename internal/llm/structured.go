package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON decodes the first JSON object found in raw model output into T.
// Markdown code fences and surrounding prose are ignored. validate may be nil.
func ExtractJSON[T any](raw string, validate func(T) error) (T, error) {
	var out T
	block := firstObject(stripFences(raw))
	if block == "" {
		return out, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	if err := json.Unmarshal([]byte(block), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(out); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// stripFences drops markdown fence lines, keeping what they enclose.
func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstObject returns the first balanced {...} block, honoring braces inside
// string literals.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
