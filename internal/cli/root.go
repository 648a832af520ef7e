package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iorg-s/delivery-backend/internal/action"
	"github.com/iorg-s/delivery-backend/internal/compose"
	"github.com/iorg-s/delivery-backend/internal/config"
	"github.com/iorg-s/delivery-backend/internal/dispatcher"
	"github.com/iorg-s/delivery-backend/internal/logger"
	"github.com/iorg-s/delivery-backend/internal/registry"
)

const configFile = "devctl.toml"

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "devctl [target]",
	Short: "Delivery backend dev lifecycle - containers, dev server, migrations",
	Long: `devctl runs one development-lifecycle action for the delivery backend.

Targets:
  up       - Start the container group (docker compose up -d)
  down     - Stop the container group (docker compose down)
  shell    - Start the local dev server with live reload
  migrate  - Apply pending database migrations

Any other target prints this listing and exits normally.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRoot,
}

// Execute runs the CLI and returns the process exit code: the dispatched
// action's own code, or 0 when the target was unknown.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func runRoot(cmd *cobra.Command, args []string) {
	log := logger.GetLogger()

	var target string
	if len(args) > 0 {
		target = args[0]
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitCode = 1
		return
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitCode = 1
		return
	}

	if target == "up" {
		logComposeInfo(cfg, log)
	}

	d := dispatcher.New(reg, action.HostExecutor{}, os.Stdout)
	exitCode = d.Run(context.Background(), target)
}

// buildRegistry assembles the fixed four-target registry, applying any
// command overrides from devctl.toml. Overrides may only re-point targets
// that already exist; the registry's key set never changes at runtime.
func buildRegistry(cfg config.Config) (*registry.Registry, error) {
	defaults := []struct {
		target string
		act    action.Action
	}{
		{"up", action.Action{
			Label: "Starting container group",
			Name:  "docker",
			Args:  []string{"compose", "-f", cfg.Compose(), "up", "-d"},
		}},
		{"down", action.Action{
			Label: "Stopping container group",
			Name:  "docker",
			Args:  []string{"compose", "-f", cfg.Compose(), "down"},
		}},
		{"shell", action.Action{
			Label: "Starting application server",
			Name:  "uvicorn",
			Args:  []string{"app.main:app", "--reload"},
		}},
		{"migrate", action.Action{
			Label: "Running migrations",
			Name:  "alembic",
			Args:  []string{"upgrade", "head"},
		}},
	}

	reg := registry.New()
	for _, d := range defaults {
		act := d.act
		argv, ok, err := cfg.Command(d.target)
		if err != nil {
			return nil, err
		}
		if ok {
			act.Name = argv[0]
			act.Args = argv[1:]
		}
		reg.Register(d.target, act)
	}

	for key := range cfg.Actions {
		if _, ok := reg.Lookup(key); !ok {
			return nil, fmt.Errorf("unknown target %q in %s", key, configFile)
		}
	}
	return reg, nil
}

// logComposeInfo surfaces compose file problems early on the up path. It is
// best effort only: docker compose reports its own failures.
func logComposeInfo(cfg config.Config, log *zap.Logger) {
	if err := compose.Validate(cfg.Compose()); err != nil {
		log.Warn("compose file check failed", zap.String("file", cfg.Compose()), zap.Error(err))
		return
	}
	if names, err := compose.ServiceNames(cfg.Compose()); err == nil {
		log.Info("compose services", zap.String("file", cfg.Compose()), zap.Strings("services", names))
	}
}
