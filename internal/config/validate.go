package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if c.Limits.MaxWords < 0 {
		return errors.New("limits.max_words must be zero or positive")
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTokenizer() error {
	if c.Tokenizer.Initial < 0 {
		return errors.New("tokenizer.initial must be zero or positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Sort {
	case "none", "lexicographical", "l", "numeric":
	default:
		return fmt.Errorf("report.sort: unsupported value %q (want none, lexicographical, l or numeric)", c.Report.Sort)
	}
	switch c.Report.Format {
	case "tsv", "table":
	default:
		return fmt.Errorf("report.format: unsupported value %q (want tsv or table)", c.Report.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color: unsupported value %q (want auto, always or never)", c.Logging.Color)
	}
	return nil
}
