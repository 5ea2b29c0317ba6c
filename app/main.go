package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"golang.org/x/term"

	"gosh/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	sh := shell.New(os.Stdout, os.Stderr)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPlain(sh, os.Stdin)
	}

	sh.EnableSuggestions()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.GreenString("$ "),
		HistoryFile:     historyFile(),
		HistoryLimit:    1000,
		AutoComplete:    &commandCompleter{shell: sh},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		// raw mode can fail on exotic terminals, fall back to plain reads
		color.New(color.FgRed).Fprintln(os.Stderr, "gosh: readline unavailable:", err)
		return runPlain(sh, os.Stdin)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// EOF or a closed terminal both end the session cleanly
			return 0
		}

		if done, code := eval(sh, line); done {
			return code
		}
	}
}

// runPlain reads commands line by line with no prompt, history or
// suggestions. Used when stdin is not a terminal (scripts, pipes).
func runPlain(sh *shell.Shell, r io.Reader) int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if done, code := eval(sh, scanner.Text()); done {
			return code
		}
	}
	return 0
}

func eval(sh *shell.Shell, line string) (done bool, code int) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, 0
	}

	if err := sh.Eval(context.Background(), line); err != nil {
		var exit *shell.ExitRequest
		if errors.As(err, &exit) {
			return true, exit.Code
		}
		fmt.Fprintln(os.Stderr, "gosh:", err)
	}

	return false, 0
}

func historyFile() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".gosh_history")
}
