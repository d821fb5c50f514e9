package config

const (
	defaultDataDir     = "~/.local/share/prodlogs/data"
	defaultLogDir      = "~/.local/share/prodlogs/logs"
	defaultTrainingDir = "~/production-logs/training"
	defaultOutputDir   = "~/production-logs/output"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultFuzzyThreshold = 85

	defaultRotation = 90

	defaultP21Port         = 1433
	defaultP21Database     = "P21"
	defaultP21LocationID   = 210
	defaultP21QueryTimeout = 30

	defaultGitHostBaseURL        = "https://api.github.com"
	defaultGitHostBranch         = "main"
	defaultGitHostRequestTimeout = 15

	defaultMirrorFile = "daily_output_log.csv"
)

// DefaultEntryMachines is the machine list presented by the daily output
// entry form. It is broader than the detection catalog because the form
// covers machines whose logs are not scanned.
var DefaultEntryMachines = []string{
	"Jenny", "Cutter 1", "Cutter 2", "Cutter 3", "Die Cutter",
	"PC1", "PC2", "PC3", "PC5", "AW1",
	"Sheeter 1", "Sheeter 2",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			LogDir:      defaultLogDir,
			TrainingDir: defaultTrainingDir,
			OutputDir:   defaultOutputDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Detection: Detection{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		PDF: PDF{
			Rotation: defaultRotation,
		},
		OCR: OCR{
			Languages: []string{"eng"},
			DPIChain:  []int{150, 120},
		},
		P21: P21{
			Port:                defaultP21Port,
			Database:            defaultP21Database,
			LocationID:          defaultP21LocationID,
			QueryTimeoutSeconds: defaultP21QueryTimeout,
		},
		GitHost: GitHost{
			BaseURL:               defaultGitHostBaseURL,
			Branch:                defaultGitHostBranch,
			RequestTimeoutSeconds: defaultGitHostRequestTimeout,
		},
		Entry: Entry{
			Machines:   append([]string(nil), DefaultEntryMachines...),
			MirrorFile: defaultMirrorFile,
		},
	}
}
