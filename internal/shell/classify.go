package shell

import "strings"

// StreamTarget is one redirection destination.
type StreamTarget struct {
	Path   string
	Append bool
}

// RedirectionSpec holds at most one target per output stream. When a line
// redirects the same stream twice the later target wins.
type RedirectionSpec struct {
	Stdout *StreamTarget
	Stderr *StreamTarget
}

// ParsedCommand is one classified command line. It is consumed by Eval and
// then discarded.
type ParsedCommand struct {
	Name      string
	Args      []string
	Redirects RedirectionSpec
}

// Classify scans tokens left to right for redirection operators, records
// their targets and returns the residual command. The first residual token is
// the command name, the rest are its arguments in original order.
//
// Returns ErrEmptyCommand when no command token remains and
// ErrMissingRedirectTarget when an operator has no following token.
func Classify(tokens []string) (*ParsedCommand, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}

	var rest []string
	var spec RedirectionSpec

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok {
		case ">", "1>", ">>", "1>>", "2>", "2>>":
			if i+1 >= len(tokens) {
				return nil, ErrMissingRedirectTarget
			}
			target := &StreamTarget{
				Path:   tokens[i+1],
				Append: strings.HasSuffix(tok, ">>"),
			}
			if strings.HasPrefix(tok, "2") {
				spec.Stderr = target
			} else {
				spec.Stdout = target
			}
			i++

		default:
			rest = append(rest, tok)
		}
	}

	if len(rest) == 0 {
		return nil, ErrEmptyCommand
	}

	return &ParsedCommand{Name: rest[0], Args: rest[1:], Redirects: spec}, nil
}
