package action

import (
	"context"

	"github.com/iorg-s/delivery-backend/internal/execx"
)

// Action pairs a human-readable status label with the external command it
// stands for. Actions are built once at startup and never mutated.
type Action struct {
	Label string
	Name  string
	Args  []string
}

// Executor runs an action's command. The CLI wires in HostExecutor; tests
// substitute a recorder so dispatch can be exercised without spawning
// subprocesses.
type Executor interface {
	Run(ctx context.Context, act Action) execx.Result
}

// HostExecutor runs actions as real child processes on the host.
type HostExecutor struct{}

func (HostExecutor) Run(ctx context.Context, act Action) execx.Result {
	return execx.Run(ctx, act.Name, act.Args...)
}
