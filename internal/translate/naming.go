// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
)

// reservedWords maps source identifiers that collide with Rust keywords
// to their escaped spellings.
var reservedWords = map[string]string{
	"ref":   "ref_",
	"type":  "type_",
	"self":  "self_",
	"match": "match_",
}

// Mangle escapes identifiers that collide with target-dialect keywords.
func Mangle(s string) string {
	if escaped, ok := reservedWords[s]; ok {
		return escaped
	}
	return s
}

// ToSnakeCase converts PascalCase or camelCase to snake_case, keeping
// acronym runs together (e.g. "HTTPMethod" -> "http_method").
func ToSnakeCase(s string) string {
	var sb strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// ToPascalCase converts snake_case, kebab-case or camelCase to
// PascalCase. Acronym runs are normalized to one capitalized word
// (e.g. "HTTPMethod" -> "HttpMethod").
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(ToSnakeCase(s), func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}

	return sb.String()
}
