package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"xwc/internal/logging"
	"xwc/internal/registry"
	"xwc/internal/report"
	"xwc/internal/reportstore"
	"xwc/internal/services"
	"xwc/internal/tokenize"
)

// Options configures a run.
type Options struct {
	Tokenizer tokenize.Options
	Report    report.Options
	Format    report.Format
	// MaxWords caps the number of distinct words; zero means unlimited.
	MaxWords int
	// Locale is recorded with persisted runs.
	Locale string
}

// Saver persists finished runs. *reportstore.Store satisfies it.
type Saver interface {
	SaveRun(ctx context.Context, run reportstore.Run) (reportstore.Run, error)
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	Documents []string
	Rows      []registry.Record
	Distinct  int
	Tokens    int
	Truncated int
}

// Engine runs exclusive word counts.
type Engine struct {
	opts      Options
	logger    *slog.Logger
	tokLogger *slog.Logger
	saver     Saver
	open      func(name string) (io.ReadCloser, error)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSaver persists every finished report through s.
func WithSaver(s Saver) Option {
	return func(e *Engine) {
		e.saver = s
	}
}

// WithOpener replaces os.Open as the document source.
func WithOpener(open func(name string) (io.ReadCloser, error)) Option {
	return func(e *Engine) {
		if open != nil {
			e.open = open
		}
	}
}

// New constructs an Engine.
func New(opts Options, logger *slog.Logger, options ...Option) *Engine {
	e := &Engine{
		opts:      opts,
		logger:    logging.NewComponentLogger(logger, "engine"),
		tokLogger: logging.NewComponentLogger(logger, "tokenizer"),
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Run scans documents, ranks the exclusive words and writes the report to out.
// Errors carry one of the services markers: ErrMissingInput, ErrOpen, ErrRead,
// ErrClose, ErrResource, ErrWrite or ErrStore. Nothing is written to out
// unless every document was scanned successfully.
func (e *Engine) Run(ctx context.Context, documents []string, out io.Writer) (*Result, error) {
	if len(documents) == 0 {
		return nil, services.Wrap(services.ErrMissingInput, "engine", "", "at least one document must be specified", nil)
	}

	result := &Result{Documents: append([]string(nil), documents...)}
	if id, ok := services.RunIDFromContext(ctx); ok {
		result.RunID = id
	}

	reg := registry.New(e.opts.MaxWords)
	for i, name := range documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.scan(services.WithDocument(ctx, name), reg, name, i+1, result); err != nil {
			return nil, err
		}
	}

	result.Distinct = reg.Len()
	result.Rows = report.Rank(reg.Records(), e.opts.Report)

	logging.WithContext(ctx, e.logger).Debug("report complete",
		logging.Int("documents", len(documents)),
		logging.Int("distinct_words", result.Distinct),
		logging.Int("exclusive_words", len(result.Rows)),
		logging.String("mode", e.opts.Report.Mode.String()),
	)

	if err := e.write(out, result); err != nil {
		return nil, services.Wrap(services.ErrWrite, "engine", "write", "report", err)
	}

	if e.saver != nil {
		if err := e.save(ctx, result); err != nil {
			return result, services.Wrap(services.ErrStore, "engine", "save", "report", err)
		}
	}
	return result, nil
}

func (e *Engine) scan(ctx context.Context, reg *registry.Registry, name string, document int, result *Result) error {
	f, err := e.open(name)
	if err != nil {
		return services.Wrap(services.ErrOpen, "engine", "open", name, err)
	}
	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
	}()

	scanner := tokenize.NewScanner(f, e.opts.Tokenizer)
	tokens, truncated := 0, 0
	for scanner.Scan() {
		tok := scanner.Token()
		tokens++
		if tok.Truncated {
			truncated++
			logging.WarnWithContext(ctx, e.tokLogger, "word truncated", "truncation",
				logging.String("word", tok.Text),
				logging.Int("limit", e.opts.Tokenizer.MaxWordLength),
			)
		}
		if err := reg.Record(tok.Text, document); err != nil {
			if errors.Is(err, registry.ErrCapacity) {
				return services.Wrap(services.ErrResource, "engine", "record", name, err)
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return services.Wrap(services.ErrRead, "engine", "read", name, err)
	}

	closed = true
	if err := f.Close(); err != nil {
		return services.Wrap(services.ErrClose, "engine", "close", name, err)
	}

	result.Tokens += tokens
	result.Truncated += truncated
	logging.WithContext(ctx, e.logger).Debug("document scanned",
		logging.Int("tokens", tokens),
		logging.Int("truncated", truncated),
	)
	return nil
}

func (e *Engine) write(out io.Writer, result *Result) error {
	if e.opts.Format == report.FormatTable {
		_, err := io.WriteString(out, report.Table(result.Documents, result.Rows)+"\n")
		return err
	}
	return report.Write(out, result.Documents, result.Rows)
}

func (e *Engine) save(ctx context.Context, result *Result) error {
	run := reportstore.Run{
		ID:        result.RunID,
		Mode:      e.opts.Report.Mode.String(),
		Reverse:   e.opts.Report.Reverse,
		Locale:    e.opts.Locale,
		Documents: result.Documents,
		Words:     make([]reportstore.Word, 0, len(result.Rows)),
	}
	for _, rec := range result.Rows {
		doc, ok := rec.Owner.Document()
		if !ok {
			continue
		}
		run.Words = append(run.Words, reportstore.Word{Word: rec.Word, Document: doc, Count: rec.Count})
	}
	saved, err := e.saver.SaveRun(ctx, run)
	if err != nil {
		return err
	}
	result.RunID = saved.ID
	logging.WithContext(services.WithRunID(ctx, saved.ID), e.logger).Info("report saved",
		logging.Int("words", len(run.Words)),
	)
	return nil
}
