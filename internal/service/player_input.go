package service

import "strings"

// ParsePlayerNames splits the create-form textarea, one name per line, into
// trimmed non-empty names. Counting and duo checks happen later, in
// GenerateSchedule, so a short or overfull list surfaces as a named error.
func ParsePlayerNames(input string) []string {
	var names []string
	for _, line := range strings.Split(input, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
