package campus

import "strings"

// SearchBuildings resolves a user-typed query to a building. Abbreviations
// are checked first, then full names, both by substring containment; the
// first match in encounter order wins. The second result is false when
// nothing matches.
func SearchBuildings(buildings []Building, query string) (Building, bool) {
	for _, b := range buildings {
		if b.Abbrev != "" && strings.Contains(b.Abbrev, query) {
			return b, true
		}
	}

	for _, b := range buildings {
		if strings.Contains(b.Name, query) {
			return b, true
		}
	}

	return Building{}, false
}
