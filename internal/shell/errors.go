package shell

import (
	"errors"
	"fmt"
)

// Errors produced while interpreting one command line. All of them are local
// to that line: Eval reports them and the read loop moves on.
var (
	ErrEmptyCommand          = errors.New("empty command")
	ErrMissingRedirectTarget = errors.New("missing redirect target")
	ErrNotFound              = errors.New("not found")
)

// ExitRequest is returned by the exit builtin. It is the only error that
// escapes Eval; the read loop terminates the process with Code.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
