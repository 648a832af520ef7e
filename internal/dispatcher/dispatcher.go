// Package dispatcher resolves a caller-supplied target name against the
// action registry and either runs the matching external command or prints
// guidance listing the valid targets.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/iorg-s/delivery-backend/internal/action"
	"github.com/iorg-s/delivery-backend/internal/logger"
	"github.com/iorg-s/delivery-backend/internal/registry"
)

type Dispatcher struct {
	reg  *registry.Registry
	exec action.Executor
	out  io.Writer
	log  *zap.Logger
}

func New(reg *registry.Registry, exec action.Executor, out io.Writer) *Dispatcher {
	return &Dispatcher{reg: reg, exec: exec, out: out, log: logger.GetLogger()}
}

// Run dispatches one target and returns the exit code to report. A matched
// action's exit code is mirrored as-is. An unknown target, the empty string
// included, prints guidance and returns 0: informing the caller is the
// operation succeeding, not failing.
func (d *Dispatcher) Run(ctx context.Context, target string) int {
	act, ok := d.reg.Lookup(target)
	if !ok {
		fmt.Fprintf(d.out, "Unknown target: %s\n", target)
		fmt.Fprintf(d.out, "Valid targets: %s\n", strings.Join(d.reg.Targets(), ", "))
		return 0
	}

	fmt.Fprintln(d.out, act.Label)
	d.log.Info("running action",
		zap.String("target", target),
		zap.String("command", act.Name),
		zap.Strings("args", act.Args),
	)

	res := d.exec.Run(ctx, act)
	if res.Err != nil {
		d.log.Warn("action finished with error",
			zap.String("target", target),
			zap.Int("code", res.Code),
			zap.Error(res.Err),
		)
	}
	return res.Code
}
