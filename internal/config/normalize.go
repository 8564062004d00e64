package config

import (
	"fmt"
	"strings"

	"xwc/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeReport()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	if err := c.normalizeStore(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeReport() {
	c.Report.Sort = strings.ToLower(strings.TrimSpace(c.Report.Sort))
	switch c.Report.Sort {
	case "":
		c.Report.Sort = defaultSort
	case "l":
		c.Report.Sort = "lexicographical"
	}
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultFormat
	}
	c.Report.Locale = language.NormalizeLocale(c.Report.Locale)
	if c.Report.Locale == "" {
		c.Report.Locale = defaultLocale
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultLogColor
	}

	outputs := make([]string, 0, len(c.Logging.Output))
	for _, out := range c.Logging.Output {
		out = strings.TrimSpace(out)
		switch out {
		case "":
			continue
		case "stderr", "stdout":
		default:
			expanded, err := expandPath(out)
			if err != nil {
				return fmt.Errorf("logging.output: %w", err)
			}
			out = expanded
		}
		outputs = append(outputs, out)
	}
	if len(outputs) == 0 {
		outputs = append(outputs, "stderr")
	}
	c.Logging.Output = outputs
	return nil
}

func (c *Config) normalizeStore() error {
	path := strings.TrimSpace(c.Store.Path)
	if path == "" {
		c.Store.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	c.Store.Path = expanded
	return nil
}
