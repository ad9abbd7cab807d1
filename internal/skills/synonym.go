package skills

// SynonymTable expands skill tokens so synonymous terms compare equal in the
// rule scorer. Groups are symmetric: every member expands to the whole group.
type SynonymTable struct {
	groups map[string][]string
}

func NewSynonymTable(groups [][]string) *SynonymTable {
	m := make(map[string][]string)
	for _, g := range groups {
		norm := make([]string, 0, len(g))
		for _, s := range g {
			n := normalizeToken(s)
			if n != "" {
				norm = append(norm, n)
			}
		}
		if len(norm) < 2 {
			continue
		}
		for _, member := range norm {
			for _, other := range norm {
				if other != member {
					m[member] = append(m[member], other)
				}
			}
		}
	}
	return &SynonymTable{groups: m}
}

// Expand returns a set containing every token plus all of its synonyms.
func (t *SynonymTable) Expand(set map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for s := range set {
		out[s] = struct{}{}
		if t == nil {
			continue
		}
		for _, syn := range t.groups[s] {
			out[syn] = struct{}{}
		}
	}
	return out
}

// Synonyms lists the group for one token, or nil when it has none.
func (t *SynonymTable) Synonyms(token string) []string {
	if t == nil {
		return nil
	}
	g, ok := t.groups[normalizeToken(token)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g))
	out = append(out, g...)
	return out
}
