package pdf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prodlogs/internal/logging"
)

const trainingSetMarker = "training set"

var titleCaser = cases.Title(language.English)

// MachineNameFromStem derives the machine name from a training-set file
// stem: everything before "training set", separators and spaces stripped,
// title-cased. "cutter 1 training set v2" becomes "Cutter1". Returns ""
// when nothing usable precedes the marker.
func MachineNameFromStem(stem string) string {
	name := strings.ToLower(stem)
	if idx := strings.Index(name, trainingSetMarker); idx >= 0 {
		name = name[:idx]
	}
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}

// SplitResult describes one training-set split.
type SplitResult struct {
	Machine string
	Dir     string
	Pages   int
}

// SplitTrainingSet extracts every page of pdfPath into
// <baseDir>/<Machine>/<Machine>_page<N>.pdf.
func SplitTrainingSet(pdfPath, baseDir string) (SplitResult, error) {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	machine := MachineNameFromStem(stem)
	if machine == "" {
		return SplitResult{}, fmt.Errorf("cannot derive machine name from %q", filepath.Base(pdfPath))
	}

	outDir := filepath.Join(baseDir, machine)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return SplitResult{}, fmt.Errorf("create machine directory: %w", err)
	}

	pages, err := pdfapi.PageCountFile(pdfPath)
	if err != nil {
		return SplitResult{}, fmt.Errorf("count pages of %s: %w", filepath.Base(pdfPath), err)
	}

	for page := 1; page <= pages; page++ {
		outPath := filepath.Join(outDir, fmt.Sprintf("%s_page%d.pdf", machine, page))
		if err := pdfapi.TrimFile(pdfPath, outPath, []string{strconv.Itoa(page)}, nil); err != nil {
			return SplitResult{}, fmt.Errorf("extract page %d of %s: %w", page, filepath.Base(pdfPath), err)
		}
	}

	return SplitResult{Machine: machine, Dir: outDir, Pages: pages}, nil
}

// SplitDir splits every training-set PDF directly under baseDir into
// per-machine page files. Files whose stem yields no machine name are
// skipped with a warning rather than failing the batch.
func SplitDir(baseDir string, logger *slog.Logger) ([]SplitResult, error) {
	logger = logging.NewComponentLogger(logger, "pdf")

	matches, err := filepath.Glob(filepath.Join(baseDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("list PDFs in %s: %w", baseDir, err)
	}

	var results []SplitResult
	for _, path := range matches {
		result, err := SplitTrainingSet(path, baseDir)
		if err != nil {
			logger.Warn("skipping training set",
				logging.String("file", filepath.Base(path)),
				logging.Error(err))
			continue
		}
		logger.Info("split training set",
			logging.String("machine", result.Machine),
			logging.Int("pages", result.Pages))
		results = append(results, result)
	}
	return results, nil
}
