package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration invariants that normalization cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if err := c.validateLogging(); err != nil {
		errs = append(errs, err)
	}
	if err := c.validateDetection(); err != nil {
		errs = append(errs, err)
	}
	if err := c.validatePDF(); err != nil {
		errs = append(errs, err)
	}
	if err := c.validateGitHost(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

func (c *Config) validateDetection() error {
	// The detector accepts any threshold, but a configured value outside the
	// similarity scale is almost certainly a typo.
	if c.Detection.FuzzyThreshold < 0 || c.Detection.FuzzyThreshold > 100 {
		return fmt.Errorf("detection.fuzzy_threshold: %d outside 0-100", c.Detection.FuzzyThreshold)
	}
	return nil
}

func (c *Config) validatePDF() error {
	switch c.PDF.Rotation {
	case 90, 180, 270, -90, -180, -270:
		return nil
	default:
		return fmt.Errorf("pdf.rotation: %d is not a multiple of 90 in (-270, 270)", c.PDF.Rotation)
	}
}

func (c *Config) validateGitHost() error {
	if !c.GitHost.Enabled {
		return nil
	}
	if c.GitHost.Repo == "" || !strings.Contains(c.GitHost.Repo, "/") {
		return fmt.Errorf("githost.repo: expected owner/name, got %q", c.GitHost.Repo)
	}
	if c.GitHost.FilePath == "" {
		return errors.New("githost.file_path: required when githost is enabled")
	}
	if c.GitHost.Token == "" {
		return errors.New("githost.token: required when githost is enabled (or set GITHUB_TOKEN)")
	}
	return nil
}
