package interaction

import "strings"

// BuildCandidateSet combines a user's current medications with names newly
// extracted from a prescription. Extracted names are trimmed and blanks
// dropped; existing names are taken as stored. The result keeps duplicates
// so a repeated medication is still checked against everything else.
func BuildCandidateSet(existing, extracted []string) []string {
	out := make([]string, 0, len(existing)+len(extracted))
	out = append(out, existing...)
	for _, name := range extracted {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
