package testsupport

import (
	"path/filepath"
	"testing"

	"coursework/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLanguage selects the message catalog language.
func WithLanguage(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Messages.Language = lang
	}
}

// WithRates overrides the per-semester workload rates.
func WithRates(undergraduate, graduate int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Courses.UndergraduateHours = undergraduate
		b.cfg.Courses.GraduateHours = graduate
	}
}

// WithoutJournal disables the SQLite journal.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// WithMetricsTextfile writes metrics to a file under the temp directory.
func WithMetricsTextfile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metrics.Textfile = filepath.Join(b.baseDir, "metrics", name)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
