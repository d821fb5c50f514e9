package machines

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultNames lists the production machines in detection priority order.
// The regex pass stops at the first name with a matching pattern and the
// fuzzy fallback breaks score ties by position, so this order is load-bearing.
var DefaultNames = []string{
	"AW1", "Cutter1", "Cutter2", "Die-cutter", "Jennerjahn",
	"Pc1", "Pc2", "Pc3", "Pc5", "Sheeter1", "Sheeter2",
}

// Entry pairs one display name with its raw variant spellings and the
// flexible patterns compiled from them.
type Entry struct {
	Name     string
	Variants []string

	patterns   []*regexp.Regexp
	normalized []string
}

// Catalog is an ordered, immutable collection of machine entries.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog for the provided display names, preserving
// their order. Every name maps to at least one pattern (itself); an empty
// name list yields an empty catalog.
func NewCatalog(names []string) Catalog {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, newEntry(name))
	}
	return Catalog{entries: entries}
}

// Default returns the catalog for the hand-maintained machine list.
func Default() Catalog {
	return NewCatalog(DefaultNames)
}

// Names returns the display names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, entry := range c.entries {
		names[i] = entry.Name
	}
	return names
}

// Len reports the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog entries in order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func newEntry(name string) Entry {
	variants := variantsFor(name)

	patternSet := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if p := flexPattern(v); p != "" {
			patternSet[p] = struct{}{}
		}
	}
	sources := make([]string, 0, len(patternSet))
	for p := range patternSet {
		sources = append(sources, p)
	}
	sort.Strings(sources)

	patterns := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		patterns = append(patterns, regexp.MustCompile("(?i)"+src))
	}

	normalized := make([]string, len(variants))
	for i, v := range variants {
		normalized[i] = Normalize(v)
	}

	return Entry{
		Name:       name,
		Variants:   variants,
		patterns:   patterns,
		normalized: normalized,
	}
}

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// variantsFor generates the alternate spellings expected in scanned logs.
// Families with a numeric suffix get separator and casing permutations;
// a few literal names carry hand-enumerated forms.
func variantsFor(name string) []string {
	set := map[string]struct{}{name: {}}
	add := func(vs ...string) {
		for _, v := range vs {
			set[v] = struct{}{}
		}
	}

	low := strings.ToLower(name)
	if strings.HasPrefix(low, "cutter") {
		if m := trailingDigits.FindString(low); m != "" {
			add(
				"CUTTER "+m, "CUTTER #"+m, "CUTTER_"+m, "CUTTER-"+m,
				"Cutter "+m, "Cutter #"+m, "Cutter_"+m, "Cutter-"+m,
				"CUTTER#"+m, "Cutter#"+m,
			)
		}
	}
	if strings.HasPrefix(low, "pc") {
		if m := trailingDigits.FindString(low); m != "" {
			add("PC"+m, "PC "+m, "PC_"+m, "PC-"+m, "Pc"+m, "Pc "+m)
		}
	}
	if strings.HasPrefix(low, "sheeter") {
		if m := trailingDigits.FindString(low); m != "" {
			add("SHEETER"+m, "SHEETER "+m, "SHEETER_"+m, "Sheeter "+m)
		}
	}
	switch low {
	case "die-cutter":
		add("DIE-CUTTER", "DIE CUTTER", "Die Cutter", "Die-Cutter")
	case "aw1":
		add("AW1", "AW 1", "AW-1", "AW_1")
	case "jennerjahn":
		add("JENNERJAHN")
	}

	variants := make([]string, 0, len(set))
	for v := range set {
		if v != "" {
			variants = append(variants, v)
		}
	}
	sort.Strings(variants)
	return variants
}

var separatorRun = regexp.MustCompile(`[ \-_]+`)

// flexPattern turns a variant like "CUTTER # 2" into a pattern that lets
// spaces, hyphens, and underscores float between the literal tokens. A "#"
// additionally tolerates whitespace on either side. The alphanumeric content
// still has to match exactly.
func flexPattern(variant string) string {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		return ""
	}
	parts := separatorRun.Split(variant, -1)
	escaped := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			escaped = append(escaped, regexp.QuoteMeta(part))
		}
	}
	pattern := strings.Join(escaped, `[\s\-_]*`)
	return strings.ReplaceAll(pattern, "#", `\s*#\s*`)
}

// matchRegex reports the first display name whose patterns hit raw page
// text, along with the pattern that matched.
func (c Catalog) matchRegex(raw string) (string, string, bool) {
	for _, entry := range c.entries {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(raw) {
				return entry.Name, pattern.String(), true
			}
		}
	}
	return "", "", false
}

// BestFuzzyMatch scores normalized page text against every entry's
// normalized variants and returns the best display name with its score.
// Each entry contributes the maximum score across its variants; ties between
// entries go to the one appearing first in the catalog. An empty catalog
// returns ("", -1).
func (c Catalog) BestFuzzyMatch(normText string) (string, int) {
	bestName := ""
	bestScore := -1
	for _, entry := range c.entries {
		score := entry.fuzzyScore(normText)
		if score > bestScore {
			bestScore = score
			bestName = entry.Name
		}
	}
	return bestName, bestScore
}

func (e Entry) fuzzyScore(normText string) int {
	best := -1
	for _, variant := range e.normalized {
		if score := wratio(variant, normText); score > best {
			best = score
		}
	}
	return best
}
