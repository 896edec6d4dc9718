package recipe

import (
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/mtr/pkg/logging"
)

// ExitCodeLaunchFailed is reported when a program could not be started
const ExitCodeLaunchFailed = 127

// Outcome is the result of one external invocation
type Outcome struct {
	ExitCode int
	Err      error
}

// Failed reports whether the invocation did not complete successfully
func (o Outcome) Failed() bool {
	return o.Err != nil || o.ExitCode != 0
}

// Runner launches external programs
type Runner interface {
	Run(program string, args []string, dir string) Outcome
}

// ExecRunner runs programs with os/exec. Nil streams inherit the
// process's own stdin, stdout and stderr. There is no timeout.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts program in dir and waits for it to exit
func (r ExecRunner) Run(program string, args []string, dir string) Outcome {
	logging.LogCommand(program, args)

	cmd := exec.Command(program, args...)
	cmd.Dir = dir
	cmd.Stdin = orStream(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return Outcome{}
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode(), Err: err}
	}

	// Not found, not executable, bad working directory
	return Outcome{ExitCode: ExitCodeLaunchFailed, Err: err}
}

func orStream(r io.Reader, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w io.Writer, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
