package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir     string `toml:"data_dir"`
	LogDir      string `toml:"log_dir"`
	TrainingDir string `toml:"training_dir"`
	OutputDir   string `toml:"output_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Detection contains tuning for machine-name detection.
type Detection struct {
	FuzzyThreshold int `toml:"fuzzy_threshold"`
}

// PDF contains defaults for rotation and training-set splitting.
type PDF struct {
	Rotation  int  `toml:"rotation"`
	Overwrite bool `toml:"overwrite"`
}

// OCR contains rasterization and recognition settings.
type OCR struct {
	Languages []string `toml:"languages"`
	DPIChain  []int    `toml:"dpi_chain"`
}

// P21 contains connection settings for the P21 ERP database.
type P21 struct {
	Server              string `toml:"server"`
	Port                int    `toml:"port"`
	Database            string `toml:"database"`
	User                string `toml:"user"`
	Password            string `toml:"password"`
	LocationID          int    `toml:"location_id"`
	QueryTimeoutSeconds int    `toml:"query_timeout_seconds"`
}

// GitHost contains settings for mirroring the daily output CSV to a
// git-hosted file via the contents API.
type GitHost struct {
	Enabled               bool   `toml:"enabled"`
	BaseURL               string `toml:"base_url"`
	Repo                  string `toml:"repo"`
	FilePath              string `toml:"file_path"`
	Branch                string `toml:"branch"`
	Token                 string `toml:"token"`
	CommitterName         string `toml:"committer_name"`
	CommitterEmail        string `toml:"committer_email"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

// Entry contains settings for the daily output entry form.
type Entry struct {
	Machines   []string `toml:"machines"`
	MirrorFile string   `toml:"mirror_file"`
}

// Config encapsulates all configuration values for prodlogs.
//
// Configuration sections by subsystem:
//   - Paths: data, log, training-corpus, and report output directories
//   - Logging: log format and level
//   - Detection: fuzzy threshold for machine-name matching
//   - PDF: rotation angle and overwrite behaviour
//   - OCR: tesseract languages and the render DPI backoff chain
//   - P21: ERP database connection for the open-order report
//   - GitHost: git-hosted CSV mirror for daily output submissions
//   - Entry: machine list and mirror file name for the entry form
type Config struct {
	Paths     Paths     `toml:"paths"`
	Logging   Logging   `toml:"logging"`
	Detection Detection `toml:"detection"`
	PDF       PDF       `toml:"pdf"`
	OCR       OCR       `toml:"ocr"`
	P21       P21       `toml:"p21"`
	GitHost   GitHost   `toml:"githost"`
	Entry     Entry     `toml:"entry"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/prodlogs/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("prodlogs.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories commands write into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.OutputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath exposes tilde and environment expansion for CLI path flags.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	abs, err := filepath.Abs(os.ExpandEnv(trimmed))
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", pathValue, err)
	}
	return abs, nil
}
