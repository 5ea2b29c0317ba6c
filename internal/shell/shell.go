package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Shell is one interpreter instance: search path, builtin registry and the
// default stream bindings. The working directory is process-wide state and is
// mutated only by cd; the search path is read once at construction.
type Shell struct {
	Out io.Writer
	Err io.Writer

	pathDirs []string
	home     string
	builtins map[string]Builtin
	parser   Parser
	executor Executor
	opener   FileOpener

	suggester *suggester
}

// New builds a Shell, reading PATH and HOME once. Command output and
// diagnostics go to out and errw unless a line redirects them.
func New(out, errw io.Writer) *Shell {
	var dirs []string
	if path := os.Getenv("PATH"); path != "" {
		dirs = strings.Split(path, string(os.PathListSeparator))
	}

	s := &Shell{
		Out:      out,
		Err:      errw,
		pathDirs: dirs,
		home:     os.Getenv("HOME"),
		builtins: make(map[string]Builtin),
		parser:   NewDefaultParser(),
		opener:   DefaultFileOpener{},
	}

	s.executor = &DefaultExecutor{LookupFunc: s.Resolve}
	s.registerBuiltins()
	return s
}

// EnableSuggestions turns on did-you-mean hints for unknown commands.
func (s *Shell) EnableSuggestions() {
	s.suggester = newSuggester(s)
}

// Eval interprets one line to completion: tokenize, classify, bind
// redirections, dispatch to a builtin or an external command. Failures are
// reported on the line's stderr binding and swallowed; the only error Eval
// returns is the ExitRequest from the exit builtin.
func (s *Shell) Eval(ctx context.Context, line string) error {
	tokens := s.parser.Parse(line)

	cmd, err := Classify(tokens)
	if errors.Is(err, ErrEmptyCommand) {
		return nil
	}
	if err != nil {
		fmt.Fprintln(s.Err, "gosh: syntax error:", err)
		return nil
	}

	base := IOBindings{Stdin: os.Stdin, Stdout: s.Out, Stderr: s.Err}

	bound, cleanup, err := cmd.Redirects.Bind(base, s.opener)
	if err != nil {
		// open failures go to the original stderr, the command does not run
		fmt.Fprintln(s.Err, "gosh:", err)
		return nil
	}
	defer cleanup()

	if fn, ok := s.builtins[cmd.Name]; ok {
		err := fn(s, cmd.Args, bound)

		var exit *ExitRequest
		if errors.As(err, &exit) {
			return exit
		}
		if err != nil {
			fmt.Fprintln(bound.Stderr, "builtin error:", err)
		}
		return nil
	}

	_, err = s.executor.Execute(ctx, cmd.Name, cmd.Args, bound)
	switch {
	case errors.Is(err, ErrNotFound):
		fmt.Fprintln(bound.Stderr, cmd.Name+": command not found")
		if s.suggester != nil {
			if hint, ok := s.suggester.closest(cmd.Name); ok {
				fmt.Fprintf(bound.Stderr, "gosh: did you mean '%s'?\n", hint)
			}
		}
	case err != nil && errors.Is(err, fs.ErrPermission):
		fmt.Fprintln(bound.Stderr, cmd.Name+": permission denied")
	case err != nil:
		fmt.Fprintln(bound.Stderr, "error running command:", err)
	}

	return nil
}

// KnownCommands returns builtin names plus every file found in the search
// path directories, sorted and deduplicated. Used for completion and
// suggestions; entries are not stat'ed for the execute bit, name listing is
// enough there.
func (s *Shell) KnownCommands() []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	for name := range s.builtins {
		add(name)
	}

	for _, dir := range s.pathDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				add(e.Name())
			}
		}
	}

	sort.Strings(names)
	return names
}
