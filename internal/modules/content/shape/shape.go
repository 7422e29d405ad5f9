// Package shape normalizes wire-level record shapes: comma-joined list
// fields become ordered sequences, and camelCase field names are reconciled
// with their snake_case equivalents so either convention is accepted for the
// same logical field.
package shape

import (
	"encoding/json"
	"strings"
	"unicode"
)

// SplitList splits a comma-joined field into an ordered sequence. Empty or
// missing values normalize to an empty sequence, never nil.
func SplitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the storage-side inverse of SplitList.
func JoinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return strings.Join(out, ",")
}

// CanonicalKey converts a camelCase field name to snake_case. Keys already
// in snake_case pass through unchanged. Acronym runs collapse into a single
// segment (liveURL -> live_url).
func CanonicalKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && runes[i-1] != '_' && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DecodeLoose unmarshals a JSON object into dst after canonicalizing every
// top-level key to snake_case, so payloads may use either camelCase or
// snake_case names. When both spellings of a key are present the snake_case
// one wins.
func DecodeLoose(data []byte, dst interface{}) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	canonical := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		ck := CanonicalKey(key)
		if ck != key {
			if _, exists := raw[ck]; exists {
				continue
			}
		}
		canonical[ck] = value
	}

	normalized, err := json.Marshal(canonical)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, dst)
}
