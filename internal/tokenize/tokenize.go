package tokenize

import (
	"bufio"
	"errors"
	"io"
)

// Options configures word boundary and length rules.
type Options struct {
	PunctuationAsSpace bool
	// MaxWordLength caps the stored length of a word in bytes. Zero disables the cap.
	MaxWordLength int
}

// Token is one word read from a document.
type Token struct {
	Text string
	// Truncated reports that the source word was longer than MaxWordLength
	// and Text holds only its leading bytes.
	Truncated bool
}

// Scanner reads tokens from a single document. It is not restartable.
type Scanner struct {
	r    *bufio.Reader
	opts Options

	buf       []byte
	truncated bool
	tok       Token
	err       error
	done      bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader, opts Options) *Scanner {
	if opts.MaxWordLength < 0 {
		opts.MaxWordLength = 0
	}
	return &Scanner{
		r:    bufio.NewReader(r),
		opts: opts,
		buf:  make([]byte, 0, 16),
	}
}

// Scan advances to the next token, which is then available through Token.
// It returns false at end of input or on a read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
				return false
			}
			return s.emit()
		}
		if s.isBoundary(c) {
			if s.emit() {
				return true
			}
			continue
		}
		if s.opts.MaxWordLength > 0 && len(s.buf) >= s.opts.MaxWordLength {
			s.truncated = true
			continue
		}
		s.buf = append(s.buf, c)
	}
}

// Token returns the most recent token produced by Scan.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the first non-EOF read error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) emit() bool {
	if len(s.buf) == 0 {
		return false
	}
	s.tok = Token{Text: string(s.buf), Truncated: s.truncated}
	s.buf = s.buf[:0]
	s.truncated = false
	return true
}

func (s *Scanner) isBoundary(c byte) bool {
	if IsSpace(c) {
		return true
	}
	return s.opts.PunctuationAsSpace && IsPunct(c)
}

// IsSpace reports whether c is a C-locale whitespace byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsPunct reports whether c is a C-locale punctuation byte: a printable ASCII
// character that is neither alphanumeric nor a space.
func IsPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}
