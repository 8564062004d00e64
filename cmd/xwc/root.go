package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"xwc/internal/config"
	"xwc/internal/engine"
	"xwc/internal/language"
	"xwc/internal/logging"
	"xwc/internal/report"
	"xwc/internal/reportstore"
	"xwc/internal/services"
	"xwc/internal/tokenize"
)

const longHelp = `Print, for each word that appears in exactly one FILE, the word, its
number of occurrences under the column of that FILE and nothing under the
other columns. Words shared by two or more files are not listed.

Program Information
  -h, --help        Print this help and exit.

Processing
  -p, --punctuation-like-space
                    Treat ASCII punctuation like white space.

Input Control
  -i, --initial=VALUE
                    Keep only the first VALUE bytes of each word. 0 means
                    no limit. Longer words are cut and a warning is logged.

Output Control
  -l                Same as --sort=lexicographical.
  -n                Same as --sort=numeric.
  -S                Same as --sort=none.
  -s, --sort=TYPE   Sort by TYPE: lexicographical (or l) on words, numeric
                    on counts then words, none in order of first
                    appearance, reverse to reverse the count order.
  -R, --reverse     Same as --sort=reverse.

When several sort options are given the last one wins.`

type rootOptions struct {
	configPath  string
	punctuation bool
	initial     initialValue
	sort        sortSelection
	locale      string
	format      string
	storePath   string
	logLevel    string
	logFiles    []string
	printConfig bool
	writeConfig string
	listRuns    bool
	showRun     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "xwc [OPTION]... FILE [FILE]...",
		Short:         "Count the words exclusive to each file",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", services.ErrArgument, err)
	})

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&opts.punctuation, "punctuation-like-space", "p", false, "Treat ASCII punctuation like white space")
	flags.VarP(&opts.initial, "initial", "i", "Maximal number of significant initial bytes per word (0 = no limit)")
	flags.VarP(&sortValue{sel: &opts.sort}, "sort", "s", "Sort by TYPE: numeric, lexicographical, l, reverse or none")
	for _, f := range []struct {
		name, short, usage string
		mode               report.Mode
	}{
		{"lexicographical", "l", "Same as --sort=lexicographical", report.ModeLexicographical},
		{"numeric", "n", "Same as --sort=numeric", report.ModeNumeric},
		{"none", "S", "Same as --sort=none", report.ModeNone},
	} {
		flag := flags.VarPF(&modeFlag{sel: &opts.sort, mode: f.mode}, f.name, f.short, f.usage)
		flag.NoOptDefVal = "true"
	}
	flags.BoolVarP(&opts.sort.reverse, "reverse", "R", false, "Same as --sort=reverse")
	flags.StringVar(&opts.locale, "locale", "", "Collation locale for lexicographical order (default from config, fr-FR)")
	flags.StringVar(&opts.format, "format", "", "Report format: tsv or table")
	flags.StringVar(&opts.storePath, "store", "", "SQLite file receiving the finished report")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringArrayVar(&opts.logFiles, "log-file", nil, "Write logs to this file instead of standard error (repeatable; \"stderr\" keeps the terminal)")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print a sample configuration and exit")
	flags.StringVar(&opts.writeConfig, "write-config", "", "Write a sample configuration to PATH and exit")
	flags.BoolVar(&opts.listRuns, "list-runs", false, "List the reports saved in the store and exit")
	flags.StringVar(&opts.showRun, "show-run", "", "Print the saved report with this ID and exit")

	return rootCmd
}

func runReport(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if opts.printConfig {
		_, err := fmt.Fprint(cmd.OutOrStdout(), config.Sample())
		return err
	}
	if opts.writeConfig != "" {
		return writeSampleConfig(cmd, opts.writeConfig)
	}

	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return services.Wrap(services.ErrArgument, "config", "", "", err)
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}
	if opts.listRuns || opts.showRun != "" {
		return queryStore(cmd, cfg, opts)
	}

	engineOpts, err := engineOptions(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return services.Wrap(services.ErrMissingInput, "", "", "at least one file must be specified", nil)
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return services.Wrap(services.ErrArgument, "logging", "", "", err)
	}

	ctx := services.WithRunID(cmd.Context(), uuid.NewString())
	collation, _, _ := strings.Cut(engineOpts.Locale, "-")
	logging.WithContext(ctx, logger).Debug("run configured",
		logging.Int("documents", len(args)),
		logging.String("mode", engineOpts.Report.Mode.String()),
		logging.Bool("reverse", engineOpts.Report.Reverse),
		logging.String("collation", language.DisplayName(collation)),
		logging.Int("initial", engineOpts.Tokenizer.MaxWordLength),
	)

	var runOptions []engine.Option
	if cfg.Store.Path != "" {
		store, err := reportstore.Open(ctx, cfg.Store.Path)
		if err != nil {
			return services.Wrap(services.ErrStore, "store", "open", cfg.Store.Path, err)
		}
		defer store.Close()
		runOptions = append(runOptions, engine.WithSaver(store))
	}

	_, err = engine.New(engineOpts, logger, runOptions...).Run(ctx, args, cmd.OutOrStdout())
	return err
}

// applyFlags overlays explicitly given flags on cfg and revalidates it.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	flags := cmd.Flags()
	if flags.Changed("punctuation-like-space") {
		cfg.Tokenizer.PunctuationLikeSpace = opts.punctuation
	}
	if opts.initial.set {
		cfg.Tokenizer.Initial = opts.initial.n
	}
	if opts.sort.set {
		cfg.Report.Sort = opts.sort.mode.String()
	}
	if opts.sort.reverse {
		cfg.Report.Reverse = true
	}
	if flags.Changed("locale") {
		cfg.Report.Locale = language.NormalizeLocale(opts.locale)
	}
	if flags.Changed("format") {
		cfg.Report.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(opts.logLevel))
	}
	if flags.Changed("log-file") {
		outputs := make([]string, 0, len(opts.logFiles))
		for _, path := range opts.logFiles {
			path = strings.TrimSpace(path)
			if path != "stderr" && path != "stdout" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return services.Wrap(services.ErrArgument, "flags", "log-file", "", err)
				}
				path = expanded
			}
			if path != "" {
				outputs = append(outputs, path)
			}
		}
		if len(outputs) > 0 {
			cfg.Logging.Output = outputs
		}
	}
	if flags.Changed("store") {
		path, err := config.ExpandPath(strings.TrimSpace(opts.storePath))
		if err != nil {
			return services.Wrap(services.ErrArgument, "flags", "store", "", err)
		}
		cfg.Store.Path = path
	}
	if err := cfg.Validate(); err != nil {
		return services.Wrap(services.ErrArgument, "flags", "", "", err)
	}
	return nil
}

func engineOptions(cfg *config.Config) (engine.Options, error) {
	mode, err := report.ParseMode(cfg.Report.Sort)
	if err != nil {
		return engine.Options{}, services.Wrap(services.ErrArgument, "report", "sort", "", err)
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return engine.Options{}, services.Wrap(services.ErrArgument, "report", "format", "", err)
	}
	collator, err := report.NewCollator(cfg.Report.Locale)
	if err != nil {
		return engine.Options{}, services.Wrap(services.ErrArgument, "report", "locale", "", err)
	}
	return engine.Options{
		Tokenizer: tokenize.Options{
			PunctuationAsSpace: cfg.Tokenizer.PunctuationLikeSpace,
			MaxWordLength:      cfg.Tokenizer.Initial,
		},
		Report: report.Options{
			Mode:     mode,
			Reverse:  cfg.Report.Reverse,
			Collator: collator,
		},
		Format:   format,
		MaxWords: cfg.Limits.MaxWords,
		Locale:   collator.Locale(),
	}, nil
}

// writeSampleConfig writes the sample configuration to path. An existing file
// is left untouched.
func writeSampleConfig(cmd *cobra.Command, path string) error {
	target, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return services.Wrap(services.ErrArgument, "config", "write", "", err)
	}
	if _, err := os.Stat(target); err == nil {
		return services.Wrap(services.ErrArgument, "config", "write", fmt.Sprintf("%s already exists", target), nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrWrite, "config", "write", target, err)
	}
	if err := config.CreateSample(target); err != nil {
		return services.Wrap(services.ErrWrite, "config", "write", target, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", target)
	return err
}
