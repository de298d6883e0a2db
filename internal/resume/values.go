package resume

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// yearsPattern extracts a duration from strings like "5 years", "3+ yr",
// "2.5 yrs".
var yearsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`)

// foldKey lowercases a document key and strips underscores so naming
// conventions ("tech_stack", "techStack", "TechStack") compare equal.
func foldKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asList coerces an untyped value to a slice, returning nil for anything
// that is not one. Malformed shapes contribute nothing rather than failing.
func asList(v any) []any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	return list
}

// firstString returns the first non-empty trimmed string among keys.
func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// firstYears returns the first parseable years value among keys.
func firstYears(obj map[string]any, keys []string) float64 {
	for _, key := range keys {
		if v, present := obj[key]; present {
			if years := parseYears(v); years > 0 {
				return years
			}
		}
	}
	return 0
}

// parseYears accepts numbers, numeric strings via the "N years" pattern,
// and json.Number. Anything else is 0.
func parseYears(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		if m := yearsPattern.FindStringSubmatch(value); m != nil {
			if f, err := strconv.ParseFloat(m[1], 64); err == nil {
				return f
			}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
		return 0
	}
	return 0
}
