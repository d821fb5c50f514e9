package pdf

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"prodlogs/internal/logging"
)

const rotatedSuffix = "_rotated"

// RotatedPath returns the sibling path a non-overwriting rotation writes to.
func RotatedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + rotatedSuffix + ext
}

// IsRotatedOutput reports whether path already carries the rotation suffix.
func IsRotatedOutput(path string) bool {
	ext := filepath.Ext(path)
	return strings.HasSuffix(strings.TrimSuffix(path, ext), rotatedSuffix)
}

// RotateFile rotates every page of the PDF at path by rotation degrees.
// With overwrite it rewrites the file in place; otherwise it writes a
// *_rotated.pdf sibling. Returns the output path.
func RotateFile(path string, rotation int, overwrite bool) (string, error) {
	outPath := path
	if !overwrite {
		outPath = RotatedPath(path)
	}
	// pdfcpu rewrites in place when the output path is empty.
	target := outPath
	if overwrite {
		target = ""
	}
	if err := pdfapi.RotateFile(path, target, rotation, nil, nil); err != nil {
		return "", fmt.Errorf("rotate %s: %w", filepath.Base(path), err)
	}
	return outPath, nil
}

// RotateDir walks dir recursively and rotates every PDF in it. Files that
// are themselves rotation outputs are skipped unless overwrite is set, so a
// re-run does not double-rotate. Returns the paths written.
func RotateDir(dir string, rotation int, overwrite bool, logger *slog.Logger) ([]string, error) {
	logger = logging.NewComponentLogger(logger, "pdf")

	var outputs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		if !overwrite && IsRotatedOutput(path) {
			return nil
		}
		out, err := RotateFile(path, rotation, overwrite)
		if err != nil {
			return err
		}
		logger.Info("rotated",
			logging.String("file", filepath.Base(out)),
			logging.Int("degrees", rotation))
		outputs = append(outputs, out)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rotate directory %s: %w", dir, err)
	}
	return outputs, nil
}
