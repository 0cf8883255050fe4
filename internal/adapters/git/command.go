package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

// commandError is a failed git invocation.
type commandError struct {
	args   []string
	stderr string
	err    error
}

func (e *commandError) Error() string {
	msg := "git " + strings.Join(e.args, " ") + ": " + e.err.Error()
	if e.stderr != "" {
		msg += ": " + e.stderr
	}
	return msg
}

func (e *commandError) Unwrap() error {
	return e.err
}

// firstLine returns the first non-empty line of git's stderr.
func (e *commandError) firstLine() string {
	for _, line := range strings.Split(e.stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return e.err.Error()
}

// runner executes the git binary. The binary is looked up on first use, so
// runs that never touch a git source work without git installed.
type runner struct {
	bin func() (string, error)
}

func newRunner() *runner {
	return &runner{bin: sync.OnceValues(func() (string, error) {
		bin, err := exec.LookPath("git")
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrGitNotInstalled, "failed to locate git"), "reason", err.Error())
		}
		return bin, nil
	})}
}

// run executes git with args in dir and returns trimmed stdout. Stderr is
// captured for error reporting. Both streams are mirrored to the vertex carried by ctx.
func (r *runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	bin, err := r.bin()
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer

	//nolint:gosec // arguments are built from normalized sources
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_ASKPASS=echo", "LC_ALL=C")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(&stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) || stderr.Len() > 0 {
			return "", &commandError{args: args, stderr: strings.TrimSpace(stderr.String()), err: err}
		}
		return "", zerr.Wrap(err, "failed to run git")
	}

	return strings.TrimSpace(stdout.String()), nil
}
