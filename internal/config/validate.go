package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCourses(); err != nil {
		return err
	}
	if err := c.validateMessages(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCourses() error {
	if c.Courses.UndergraduateHours <= 0 {
		return errors.New("courses.undergraduate_hours must be positive")
	}
	if c.Courses.GraduateHours <= 0 {
		return errors.New("courses.graduate_hours must be positive")
	}
	if c.Courses.UndergraduateHours == c.Courses.GraduateHours {
		return fmt.Errorf("courses.undergraduate_hours and courses.graduate_hours must differ (both %d)", c.Courses.GraduateHours)
	}
	return nil
}

func (c *Config) validateMessages() error {
	if _, err := language.Parse(c.Messages.Language); err != nil {
		return fmt.Errorf("messages.language %q: %w", c.Messages.Language, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
