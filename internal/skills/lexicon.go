package skills

import (
	"sort"
	"strings"
)

// Lexicon is the canonical skills table. It is built once at startup and
// shared read-only across all match computations.
type Lexicon struct {
	canonical map[string]string
	entries   []string
}

// NewLexicon builds a lexicon from canonical skill names plus an alias map
// (alias -> canonical). Every key is normalized to lower case.
func NewLexicon(canonicalSkills []string, aliases map[string]string) *Lexicon {
	canon := make(map[string]string, len(canonicalSkills)+len(aliases))
	for _, s := range canonicalSkills {
		n := normalizeToken(s)
		if n == "" {
			continue
		}
		canon[n] = n
	}
	for alias, target := range aliases {
		a := normalizeToken(alias)
		t := normalizeToken(target)
		if a == "" || t == "" {
			continue
		}
		canon[a] = t
		if _, ok := canon[t]; !ok {
			canon[t] = t
		}
	}

	entries := make([]string, 0, len(canon))
	for k := range canon {
		entries = append(entries, k)
	}
	// Multi-word entries must be matched before their single-token parts.
	sort.Slice(entries, func(i, j int) bool {
		wi := strings.Count(entries[i], " ")
		wj := strings.Count(entries[j], " ")
		if wi != wj {
			return wi > wj
		}
		if len(entries[i]) != len(entries[j]) {
			return len(entries[i]) > len(entries[j])
		}
		return entries[i] < entries[j]
	})

	return &Lexicon{canonical: canon, entries: entries}
}

// Canonical resolves an arbitrary skill string to its canonical token.
// Unknown skills canonicalize to their normalized form.
func (l *Lexicon) Canonical(skill string) string {
	n := normalizeToken(skill)
	if n == "" {
		return ""
	}
	if l == nil {
		return n
	}
	if c, ok := l.canonical[n]; ok {
		return c
	}
	return n
}

// CanonicalSet canonicalizes and dedupes a list of skill strings.
func (l *Lexicon) CanonicalSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		c := l.Canonical(it)
		if c == "" {
			continue
		}
		out[c] = struct{}{}
	}
	return out
}

// Extract scans free text for lexicon entries, greedily matching multi-word
// entries first, and returns the canonical deduped set.
func (l *Lexicon) Extract(text string) map[string]struct{} {
	out := make(map[string]struct{})
	if l == nil || strings.TrimSpace(text) == "" {
		return out
	}

	haystack := " " + normalizeText(text) + " "
	for _, entry := range l.entries {
		if containsToken(haystack, entry) {
			out[l.canonical[entry]] = struct{}{}
		}
	}
	return out
}

// ContainsToken reports whether token occurs in text on word boundaries.
// "java" is not matched inside "javascript".
func ContainsToken(text, token string) bool {
	needle := normalizeToken(token)
	if needle == "" || strings.TrimSpace(text) == "" {
		return false
	}
	haystack := " " + normalizeText(text) + " "
	return containsToken(haystack, needle)
}

// Size reports the number of lexicon entries, aliases included.
func (l *Lexicon) Size() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

func containsToken(haystack, needle string) bool {
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		abs := from + idx
		if isBoundary(haystack[abs-1]) && isBoundary(haystack[abs+len(needle)]) {
			return true
		}
		from = abs + 1
	}
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', ',', ';', ':', '.', '(', ')', '/', '|', '"', '\'':
		return true
	}
	return false
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
