package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeOCR()
	c.normalizeP21()
	c.normalizeGitHost()
	c.normalizeEntry()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []*string{
		&c.Paths.DataDir,
		&c.Paths.LogDir,
		&c.Paths.TrainingDir,
		&c.Paths.OutputDir,
	}
	for _, field := range fields {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeOCR() {
	languages := make([]string, 0, len(c.OCR.Languages))
	for _, lang := range c.OCR.Languages {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	c.OCR.Languages = languages

	chain := make([]int, 0, len(c.OCR.DPIChain))
	for _, dpi := range c.OCR.DPIChain {
		if dpi > 0 {
			chain = append(chain, dpi)
		}
	}
	if len(chain) == 0 {
		chain = []int{150, 120}
	}
	c.OCR.DPIChain = chain
}

func (c *Config) normalizeP21() {
	c.P21.Server = strings.TrimSpace(c.P21.Server)
	c.P21.Database = strings.TrimSpace(c.P21.Database)
	c.P21.User = strings.TrimSpace(c.P21.User)
	if c.P21.Password == "" {
		c.P21.Password = os.Getenv("PRODLOGS_DB_PASS")
	}
	if c.P21.Port <= 0 {
		c.P21.Port = defaultP21Port
	}
	if c.P21.QueryTimeoutSeconds <= 0 {
		c.P21.QueryTimeoutSeconds = defaultP21QueryTimeout
	}
}

func (c *Config) normalizeGitHost() {
	c.GitHost.BaseURL = strings.TrimRight(strings.TrimSpace(c.GitHost.BaseURL), "/")
	if c.GitHost.BaseURL == "" {
		c.GitHost.BaseURL = defaultGitHostBaseURL
	}
	c.GitHost.Repo = strings.Trim(strings.TrimSpace(c.GitHost.Repo), "/")
	c.GitHost.FilePath = strings.TrimLeft(strings.TrimSpace(c.GitHost.FilePath), "/")
	if c.GitHost.Branch = strings.TrimSpace(c.GitHost.Branch); c.GitHost.Branch == "" {
		c.GitHost.Branch = defaultGitHostBranch
	}
	if c.GitHost.Token == "" {
		c.GitHost.Token = os.Getenv("GITHUB_TOKEN")
	}
	if c.GitHost.RequestTimeoutSeconds <= 0 {
		c.GitHost.RequestTimeoutSeconds = defaultGitHostRequestTimeout
	}
}

func (c *Config) normalizeEntry() {
	machines := make([]string, 0, len(c.Entry.Machines))
	for _, name := range c.Entry.Machines {
		name = strings.TrimSpace(name)
		if name != "" {
			machines = append(machines, name)
		}
	}
	if len(machines) == 0 {
		machines = append([]string(nil), DefaultEntryMachines...)
	}
	c.Entry.Machines = machines

	if c.Entry.MirrorFile = strings.TrimSpace(c.Entry.MirrorFile); c.Entry.MirrorFile == "" {
		c.Entry.MirrorFile = defaultMirrorFile
	}
}
