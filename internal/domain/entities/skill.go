package entities

import "strings"

type Skill struct {
	Id   uint
	Name string
}

// NormalizeSkillNames turns comma-separated free text into canonical skill
// names: trimmed, lower-cased, without empties or repeats, in first-seen order.
func NormalizeSkillNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		name := strings.ToLower(strings.TrimSpace(p))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
