package machines

import (
	"log/slog"
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"prodlogs/internal/logging"
)

// DefaultFuzzyThreshold is the minimum weighted-ratio score (0-100 scale)
// accepted by the fuzzy fallback.
const DefaultFuzzyThreshold = 85

func wratio(a, b string) int {
	return fuzzy.WRatio(a, b)
}

// Detect assigns at most one machine display name to each page of OCR text.
//
// Per page it first tests every flexible pattern case-insensitively against
// the raw text in catalog order, choosing the first name that hits. Only when
// no pattern matches and the normalized text is non-empty does it fall back
// to fuzzy scoring, accepting the best-scoring name when its score reaches
// threshold. Pages with no confident match are omitted from the result.
//
// Threshold is accepted uncritically: values above 100 never match and
// values at or below zero match any non-empty page.
func Detect(pageText map[int]string, catalog Catalog, threshold int, logger *slog.Logger) map[int]string {
	logger = logging.NewComponentLogger(logger, "machines")

	assigned := make(map[int]string)
	for _, page := range sortedPages(pageText) {
		raw := pageText[page]

		if name, pattern, ok := catalog.matchRegex(raw); ok {
			assigned[page] = name
			logger.Debug("regex match",
				logging.Int("page", page),
				logging.String("machine", name),
				logging.String("pattern", pattern))
			continue
		}

		norm := Normalize(raw)
		if norm == "" {
			logger.Debug("no machine detected", logging.Int("page", page))
			continue
		}

		name, score := catalog.BestFuzzyMatch(norm)
		logger.Debug("fuzzy best",
			logging.Int("page", page),
			logging.String("machine", name),
			logging.Int("score", score))
		if name != "" && score >= threshold {
			assigned[page] = name
			continue
		}
		logger.Debug("no machine detected", logging.Int("page", page))
	}
	return assigned
}

// sortedPages orders pages ascending so diagnostic output is deterministic;
// matching itself is order-independent across pages.
func sortedPages(pageText map[int]string) []int {
	pages := make([]int, 0, len(pageText))
	for page := range pageText {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages
}
