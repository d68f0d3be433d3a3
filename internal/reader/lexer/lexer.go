// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for scheme source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Parentheses are always emitted as single-character tokens. Every other
// maximal run of characters that are neither parentheses nor whitespace is
// emitted as an atom. Whitespace is discarded. Any text can be scanned;
// unbalanced parentheses are the parser's concern.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/struct/loc"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	closed bool     // No more text will be queued.
	first  int      // Index of the current token's first byte.
	index  int      // Index of the current byte.
	queue  []string // Buffers waiting to be scanned.
	state  action   // Current action.

	cursor loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		cursor: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 2),
	}

	l.source = l.cursor
	l.state = skipWhitespace

	return l
}

// Close tells the lexer that no more text will be passed to Scan. Any atom
// still being collected is emitted once the buffer is exhausted.
func (l *T) Close() {
	l.closed = true
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// When more text is passed to Scan, scanning resumes where it left off.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		l.gather()

		state := l.state(l)
		if state == nil {
			// Out of text. The current state is kept so that an
			// atom split across buffers is scanned as one token.
			return nil
		}

		l.state = state
	}
}

// Tokens scans all of text and returns its tokens.
func Tokens(label, text string) []*token.T {
	l := New(label)

	l.Scan(text)
	l.Close()

	var ts []*token.T
	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.cursor.Line++
		l.cursor.Char = 1
	} else {
		l.cursor.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	// Prepend any partially scanned token to the new text.
	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source = l.cursor
	l.first = l.index
}

func delimiter(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			if l.closed && l.index > l.first {
				l.emit(token.Atom, l.Text())
				return skipWhitespace
			}

			return nil
		case delimiter(r):
			l.emit(token.Atom, l.Text())
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == '(' || r == ')':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())

			return skipWhitespace
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()

			continue
		}

		return scanAtom
	}
}
