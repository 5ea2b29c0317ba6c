package shell

import (
	"fmt"
	"io"
	"os"
)

// FileOpener abstracts redirection target creation so tests can substitute
// the filesystem.
type FileOpener interface {
	OpenWrite(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
}

// DefaultFileOpener uses the real filesystem.
type DefaultFileOpener struct{}

func (DefaultFileOpener) OpenWrite(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm)
}

// IOBindings are the streams one command runs with.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Bind applies the redirection spec on top of base, opening each target with
// truncate or append semantics (created if absent). The returned cleanup
// closes every file opened here and must run once the command finishes. On
// error nothing stays open and the command must not run.
func (spec RedirectionSpec) Bind(base IOBindings, opener FileOpener) (IOBindings, func(), error) {
	bound := base
	var files []io.Closer

	cleanup := func() {
		for _, f := range files {
			f.Close()
		}
	}

	open := func(t *StreamTarget) (io.WriteCloser, error) {
		flag := os.O_CREATE | os.O_WRONLY
		if t.Append {
			flag |= os.O_APPEND
		} else {
			flag |= os.O_TRUNC
		}

		f, err := opener.OpenWrite(t.Path, flag, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", t.Path, err)
		}
		files = append(files, f)
		return f, nil
	}

	if t := spec.Stdout; t != nil {
		f, err := open(t)
		if err != nil {
			cleanup()
			return base, nil, err
		}
		bound.Stdout = f
	}

	if t := spec.Stderr; t != nil {
		f, err := open(t)
		if err != nil {
			cleanup()
			return base, nil, err
		}
		bound.Stderr = f
	}

	return bound, cleanup, nil
}
