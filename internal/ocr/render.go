package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"prodlogs/internal/logging"
)

// renderPages rasterizes every page of the PDF at path, trying each DPI in
// chain until one succeeds for the whole document. Oversized scans that blow
// up at 150 DPI usually render fine at 120.
func renderPages(path string, chain []int, logger *slog.Logger) ([]image.Image, error) {
	if len(chain) == 0 {
		chain = []int{150}
	}

	var lastErr error
	for _, dpi := range chain {
		images, err := renderAtDPI(path, dpi)
		if err == nil {
			return images, nil
		}
		lastErr = err
		logger.Warn("render failed, trying lower dpi",
			logging.String("file", filepath.Base(path)),
			logging.Int("dpi", dpi),
			logging.Error(err))
	}
	return nil, fmt.Errorf("render %s: %w", filepath.Base(path), lastErr)
}

func renderAtDPI(path string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	images := make([]image.Image, 0, doc.NumPage())
	for page := 0; page < doc.NumPage(); page++ {
		img, err := doc.ImageDPI(page, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("render page %d at %d dpi: %w", page+1, dpi, err)
		}
		images = append(images, img)
	}
	return images, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page image: %w", err)
	}
	return buf.Bytes(), nil
}
