package utils

import (
	"strings"
)

// ParseIDList turns a pasted text block of cylinder IDs (one per line,
// commas also accepted) into a de-duplicated upper-case list. Blank
// entries are dropped.
func ParseIDList(raw string) []string {
	normalized := strings.ReplaceAll(raw, ",", "\n")

	var ids []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(normalized, "\n") {
		id := strings.ToUpper(strings.TrimSpace(line))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
