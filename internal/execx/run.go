package execx

import (
	"context"
	"os"
	"os/exec"
)

// Result reports how a child process ended.
type Result struct {
	Code int
	Err  error
}

// Run executes name with args, wiring the standard streams through to the
// host. The returned code is the child's own exit code when it ran, 124 when
// the context deadline killed it, and 1 when the process could not be
// started at all.
func Run(ctx context.Context, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}
