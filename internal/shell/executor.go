package shell

import (
	"context"
	"os/exec"
)

// Executor runs external commands with the given stream bindings.
type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
}

// DefaultExecutor resolves the command through LookupFunc, spawns it and
// waits synchronously for termination, propagating the child's exit status.
type DefaultExecutor struct {
	LookupFunc func(name string) (string, bool)
}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error) {
	path, ok := e.LookupFunc(name)
	if !ok {
		return -1, ErrNotFound
	}

	cmd := exec.CommandContext(ctx, path, args...)
	// argv[0] stays what the user typed, not the resolved path.
	cmd.Args = append([]string{name}, args...)
	cmd.Stdin = io.Stdin
	cmd.Stdout = io.Stdout
	cmd.Stderr = io.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
