package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"prodlogs/internal/logging"
)

// Engine recognizes rendered pages with Tesseract.
type Engine struct {
	languages     []string
	dpiChain      []int
	clientFactory func() *gosseract.Client
}

// NewEngine constructs a Tesseract-backed engine. Languages and the DPI
// backoff chain fall back to sensible defaults when empty.
func NewEngine(languages []string, dpiChain []int) *Engine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	if len(dpiChain) == 0 {
		dpiChain = []int{150, 120}
	}
	return &Engine{
		languages:     languages,
		dpiChain:      dpiChain,
		clientFactory: gosseract.NewClient,
	}
}

// RecognizePDF renders and recognizes every page of the PDF at path. Page
// numbers in the returned document are 1-based.
func (e *Engine) RecognizePDF(ctx context.Context, path string, logger *slog.Logger) (*Document, error) {
	logger = logging.NewComponentLogger(logger, "ocr")

	images, err := renderPages(path, e.dpiChain, logger)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Source: filepath.Base(path),
		Pages:  make(map[int]string, len(images)),
	}
	for i, img := range images {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := e.recognizeImage(img)
		if err != nil {
			return nil, fmt.Errorf("recognize page %d of %s: %w", i+1, filepath.Base(path), err)
		}
		doc.Pages[i+1] = text
		logger.Debug("page recognized",
			logging.String("file", doc.Source),
			logging.Int("page", i+1),
			logging.Int("text_len", len(text)))
	}

	logger.Info("document recognized",
		logging.String("file", doc.Source),
		logging.Int("pages", len(doc.Pages)))
	return doc, nil
}

func (e *Engine) recognizeImage(img image.Image) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	client := e.clientFactory()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if err := client.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
