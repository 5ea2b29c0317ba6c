package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errw bytes.Buffer
	s := New(&out, &errw)
	return s, &out, &errw
}

func testBindings(out, errw *bytes.Buffer) IOBindings {
	return IOBindings{Stdout: out, Stderr: errw}
}

func TestBuiltinEcho(t *testing.T) {
	s, out, errw := newTestShell(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "joins with single space", args: []string{"hello", "world"}, expected: "hello world\n"},
		{name: "no arguments", args: nil, expected: "\n"},
		{name: "empty argument preserved", args: []string{""}, expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			if err := builtinEcho(s, tt.args, testBindings(out, errw)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestBuiltinExit(t *testing.T) {
	s, out, errw := newTestShell(t)

	t.Run("default code zero", func(t *testing.T) {
		err := builtinExit(s, nil, testBindings(out, errw))
		var exit *ExitRequest
		if !errors.As(err, &exit) || exit.Code != 0 {
			t.Fatalf("expected ExitRequest{0}, got %v", err)
		}
	})

	t.Run("explicit code", func(t *testing.T) {
		err := builtinExit(s, []string{"7"}, testBindings(out, errw))
		var exit *ExitRequest
		if !errors.As(err, &exit) || exit.Code != 7 {
			t.Fatalf("expected ExitRequest{7}, got %v", err)
		}
	})

	t.Run("non-numeric code does not exit", func(t *testing.T) {
		errw.Reset()
		if err := builtinExit(s, []string{"abc"}, testBindings(out, errw)); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if !strings.Contains(errw.String(), "numeric argument required") {
			t.Errorf("expected a diagnostic, got %q", errw.String())
		}
	})
}

func TestBuiltinType(t *testing.T) {
	s, out, errw := newTestShell(t)

	dir := t.TempDir()
	toolPath := writeExecutable(t, dir, "mytool")
	s.pathDirs = []string{dir}

	t.Run("builtin", func(t *testing.T) {
		out.Reset()
		builtinType(s, []string{"cd"}, testBindings(out, errw))
		if out.String() != "cd is a shell builtin\n" {
			t.Errorf("got %q", out.String())
		}
	})

	t.Run("external resolves to absolute path", func(t *testing.T) {
		out.Reset()
		builtinType(s, []string{"mytool"}, testBindings(out, errw))
		if out.String() != "mytool is "+toolPath+"\n" {
			t.Errorf("got %q", out.String())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		out.Reset()
		errw.Reset()
		builtinType(s, []string{"nonexistent_cmd_xyz"}, testBindings(out, errw))
		if errw.String() != "nonexistent_cmd_xyz: not found\n" {
			t.Errorf("got %q", errw.String())
		}
		if out.String() != "" {
			t.Errorf("expected no stdout, got %q", out.String())
		}
	})
}

func TestBuiltinPwd(t *testing.T) {
	s, out, errw := newTestShell(t)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	builtinPwd(s, nil, testBindings(out, errw))
	if out.String() != wd+"\n" {
		t.Errorf("expected %q, got %q", wd+"\n", out.String())
	}
}

func TestBuiltinCd(t *testing.T) {
	s, out, errw := newTestShell(t)

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	mustGetwd := func() string {
		t.Helper()
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		resolved, err := filepath.EvalSymlinks(wd)
		if err != nil {
			t.Fatal(err)
		}
		return resolved
	}

	t.Run("changes directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Cleanup(func() { os.Chdir(orig) })
		want, err := filepath.EvalSymlinks(dir)
		if err != nil {
			t.Fatal(err)
		}

		builtinCd(s, []string{dir}, testBindings(out, errw))
		if got := mustGetwd(); got != want {
			t.Errorf("expected wd %q, got %q", want, got)
		}
	})

	t.Run("nonexistent directory leaves wd unchanged", func(t *testing.T) {
		errw.Reset()
		before := mustGetwd()

		builtinCd(s, []string{"/no/such/dir_xyz"}, testBindings(out, errw))
		if errw.String() != "cd: /no/such/dir_xyz: No such file or directory\n" {
			t.Errorf("got %q", errw.String())
		}
		if got := mustGetwd(); got != before {
			t.Errorf("working directory changed to %q", got)
		}
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home := t.TempDir()
		s.home = home
		want, err := filepath.EvalSymlinks(home)
		if err != nil {
			t.Fatal(err)
		}

		builtinCd(s, []string{"~"}, testBindings(out, errw))
		if got := mustGetwd(); got != want {
			t.Errorf("expected wd %q, got %q", want, got)
		}
	})

	t.Run("tilde slash prefix", func(t *testing.T) {
		home := t.TempDir()
		sub := filepath.Join(home, "projects")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		s.home = home
		want, err := filepath.EvalSymlinks(sub)
		if err != nil {
			t.Fatal(err)
		}

		builtinCd(s, []string{"~/projects"}, testBindings(out, errw))
		if got := mustGetwd(); got != want {
			t.Errorf("expected wd %q, got %q", want, got)
		}
	})

	t.Run("no args goes home", func(t *testing.T) {
		home := t.TempDir()
		s.home = home
		want, err := filepath.EvalSymlinks(home)
		if err != nil {
			t.Fatal(err)
		}

		builtinCd(s, nil, testBindings(out, errw))
		if got := mustGetwd(); got != want {
			t.Errorf("expected wd %q, got %q", want, got)
		}
	})
}
