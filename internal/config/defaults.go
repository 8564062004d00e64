package config

const (
	defaultConfigPath = "~/.config/xwc/config.toml"
	defaultSort       = "none"
	defaultLocale     = "fr-FR"
	defaultFormat     = "tsv"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultLogColor   = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tokenizer: Tokenizer{
			PunctuationLikeSpace: false,
			Initial:              0,
		},
		Report: Report{
			Sort:    defaultSort,
			Reverse: false,
			Locale:  defaultLocale,
			Format:  defaultFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: []string{"stderr"},
			Color:  defaultLogColor,
		},
	}
}
