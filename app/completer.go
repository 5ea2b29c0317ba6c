package main

import (
	"strings"

	"gosh/internal/shell"
)

// commandCompleter tab-completes the command word from builtin names and
// search path executables. Arguments are not completed. The name list is
// loaded once on first use.
type commandCompleter struct {
	shell *shell.Shell
	names []string
}

func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	if c.names == nil {
		c.names = c.shell.KnownCommands()
	}

	var out [][]rune
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, []rune(name[len(prefix):]))
		}
	}

	return out, len(prefix)
}
