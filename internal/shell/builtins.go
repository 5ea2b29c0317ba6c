package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Builtin is one in-process command. Builtins write results to io.Stdout and
// diagnostics to io.Stderr so redirection treats them exactly like external
// commands.
type Builtin func(s *Shell, args []string, io IOBindings) error

func (s *Shell) registerBuiltins() {
	s.builtins["echo"] = builtinEcho
	s.builtins["exit"] = builtinExit
	s.builtins["type"] = builtinType
	s.builtins["pwd"] = builtinPwd
	s.builtins["cd"] = builtinCd
}

func builtinEcho(s *Shell, args []string, io IOBindings) error {
	fmt.Fprintln(io.Stdout, strings.Join(args, " "))
	return nil
}

// builtinExit reports an invalid code instead of exiting; a valid one is
// handed to the read loop as an ExitRequest.
func builtinExit(s *Shell, args []string, io IOBindings) error {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(io.Stderr, "exit: %s: numeric argument required\n", args[0])
			return nil
		}
		code = n
	}
	return &ExitRequest{Code: code}
}

func builtinType(s *Shell, args []string, io IOBindings) error {
	if len(args) == 0 {
		fmt.Fprintln(io.Stdout, "type: usage: type NAME")
		return nil
	}

	name := args[0]

	if _, ok := s.builtins[name]; ok {
		fmt.Fprintln(io.Stdout, name, "is a shell builtin")
		return nil
	}

	if path, ok := s.Resolve(name); ok {
		fmt.Fprintln(io.Stdout, name, "is", path)
		return nil
	}

	fmt.Fprintln(io.Stderr, name+": not found")
	return nil
}

// extra arguments are ignored
func builtinPwd(s *Shell, args []string, io IOBindings) error {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(io.Stderr, "pwd:", err)
		return nil
	}
	fmt.Fprintln(io.Stdout, dir)
	return nil
}

func builtinCd(s *Shell, args []string, io IOBindings) error {
	var target string

	if len(args) == 0 {
		if s.home == "" {
			return nil
		}
		target = s.home
	} else {
		target = args[0]
	}

	if strings.HasPrefix(target, "~") {
		if s.home == "" {
			fmt.Fprintln(io.Stderr, "cd: HOME not set")
			return nil
		}
		target = expandHome(target, s.home)
	}

	if err := os.Chdir(target); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(io.Stderr, "cd: %s: No such file or directory\n", target)
		case errors.Is(err, syscall.ENOTDIR):
			fmt.Fprintf(io.Stderr, "cd: %s: Not a directory\n", target)
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(io.Stderr, "cd: %s: Permission denied\n", target)
		default:
			fmt.Fprintf(io.Stderr, "cd: %s: %v\n", target, err)
		}
	}

	return nil
}

// expandHome rewrites a leading ~ or ~/ to the home directory. Other ~user
// forms are left alone.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
