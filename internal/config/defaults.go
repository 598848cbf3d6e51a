package config

const (
	defaultStateDir           = "~/.local/share/coursework"
	defaultLogDir             = "~/.local/share/coursework/logs"
	defaultUndergraduateHours = 184
	defaultGraduateHours      = 137
	defaultLanguage           = "en"
	defaultJournalEnabled     = true
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Courses: Courses{
			UndergraduateHours: defaultUndergraduateHours,
			GraduateHours:      defaultGraduateHours,
		},
		Messages: Messages{
			Language: defaultLanguage,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
