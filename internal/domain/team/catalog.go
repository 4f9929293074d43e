package team

import (
	"sort"
	"strings"
)

// NewCatalog builds the display catalog from raw entries: deduplicated by id
// (first occurrence wins) and sorted case-insensitively by name.
func NewCatalog(items []Team) []Team {
	seen := make(map[int64]struct{}, len(items))
	out := make([]Team, 0, len(items))
	for _, item := range items {
		if item.Validate() != nil {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	return out
}
