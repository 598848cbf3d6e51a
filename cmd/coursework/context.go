package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"coursework/internal/config"
	"coursework/internal/course"
)

type globalFlags struct {
	config      string
	language    string
	noJournal   bool
	metricsFile string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and layers the persistent flags
// on top of it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cfg *config.Config) error {
	if lang := strings.TrimSpace(c.flags.language); lang != "" {
		cfg.Messages.Language = lang
	}
	if c.flags.noJournal {
		cfg.Journal.Enabled = false
	}
	if path := strings.TrimSpace(c.flags.metricsFile); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("resolve metrics file: %w", err)
		}
		cfg.Metrics.Textfile = expanded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func courseRates(cfg *config.Config) course.Rates {
	return course.Rates{
		Undergraduate: cfg.Courses.UndergraduateHours,
		Graduate:      cfg.Courses.GraduateHours,
	}
}
