package parse

import "strings"

// NormalizeEquipment canonicalizes a free-text equipment list. Tags are
// comma-separated; entries are trimmed, blanks dropped and duplicates removed
// case-insensitively, keeping the first spelling seen.
func NormalizeEquipment(raw string) string {
	return strings.Join(SplitEquipment(raw), ", ")
}

// SplitEquipment returns the individual tags of an equipment string in their
// normalized form.
func SplitEquipment(raw string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.Join(strings.Fields(part), " ")
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
