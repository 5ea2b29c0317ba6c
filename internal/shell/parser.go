package shell

import (
	"strings"
	"unicode"
)

// Parser splits a raw input line into word tokens.
type Parser interface {
	Parse(line string) []string
}

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// tokenBuffer accumulates one token. seen distinguishes "no token started
// yet" from an explicitly empty token such as '' or "".
type tokenBuffer struct {
	b    strings.Builder
	seen bool
}

func (tb *tokenBuffer) appendRune(r rune) {
	tb.b.WriteRune(r)
	tb.seen = true
}

// mark notes that a token exists even if no character was written, so that
// empty quote pairs still produce an argument.
func (tb *tokenBuffer) mark() {
	tb.seen = true
}

func (tb *tokenBuffer) flush(tokens []string) []string {
	if tb.seen {
		tokens = append(tokens, tb.b.String())
	}
	tb.b.Reset()
	tb.seen = false
	return tokens
}

// DefaultParser tokenizes with POSIX-style quoting:
//
//   - whitespace outside quotes separates tokens, runs collapse
//   - backslash outside quotes makes the next character literal
//   - single quotes are verbatim regions, no escapes inside
//   - double quotes keep whitespace literal; backslash escapes only
//     \ " $ and newline, and stays literal before anything else
//   - adjacent segments with no separating whitespace form one token
type DefaultParser struct{}

func NewDefaultParser() *DefaultParser {
	return &DefaultParser{}
}

// Parse never fails: an unterminated quote swallows the rest of the line and
// closes at end of input, and a trailing bare backslash is dropped.
func (p *DefaultParser) Parse(line string) []string {
	var tb tokenBuffer
	tokens := []string{}

	state := stateOutside
	escaping := false

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				tb.appendRune(ch)
				escaping = false
			case ch == '\\':
				escaping = true
			case unicode.IsSpace(ch):
				tokens = tb.flush(tokens)
			case ch == '\'':
				state = stateSingleQuote
				tb.mark()
			case ch == '"':
				state = stateDoubleQuote
				tb.mark()
			default:
				tb.appendRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				tb.appendRune(ch)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				if ch != '\\' && ch != '"' && ch != '$' && ch != '\n' {
					tb.appendRune('\\')
				}
				tb.appendRune(ch)
				escaping = false
			case ch == '\\':
				escaping = true
			case ch == '"':
				state = stateOutside
			default:
				tb.appendRune(ch)
			}
		}
	}

	return tb.flush(tokens)
}
