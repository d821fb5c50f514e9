package docintel

import "strings"

// PageText concatenates the trimmed, non-empty line contents of every page,
// keyed by page number. The result feeds machine detection directly.
func PageText(result *AnalyzeResult) map[int]string {
	out := make(map[int]string, len(result.Pages))
	for _, page := range result.Pages {
		parts := make([]string, 0, len(page.Lines))
		for _, line := range page.Lines {
			content := strings.TrimSpace(line.Content)
			if content != "" {
				parts = append(parts, content)
			}
		}
		out[page.PageNumber] = strings.Join(parts, " ")
	}
	return out
}
