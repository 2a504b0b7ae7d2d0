package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/eulerseq/internal/infra/fsworkspace"
	"github.com/aalvaropc/eulerseq/internal/infra/logger"
	"github.com/aalvaropc/eulerseq/internal/infra/workspacefinder"
	"github.com/aalvaropc/eulerseq/internal/ui/tui"
	"github.com/aalvaropc/eulerseq/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "eulerseq",
		Short:        "eulerseq: lazy prime and triangular number sequences",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			finder := workspacefinder.NewFinder()
			logRoot := logRootFor(finder)

			cleanup := startLogging(logRoot, debug)
			defer cleanup()

			strategy := ""
			if cfg, err := workspacefinder.LoadConfig(logRoot); err == nil {
				strategy = cfg.Sieve.Strategy
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Solver:               usecase.NewSolveProblem(usecase.WithDefaultStrategy(strategy)),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .eulerseq/logs/eulerseq.log")

	cmd.AddCommand(
		primesCmd(),
		triangleCmd(),
		divisorsCmd(),
		runCmd(),
		validateCmd(),
		suitesCmd(),
		runsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// logRootFor returns the workspace root above the working directory, or the
// working directory itself when there is none.
func logRootFor(finder *workspacefinder.Finder) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
		return root
	}
	return wd
}

func startLogging(root string, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: debug,
	})
	if cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func debugFlag(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("debug")
	return err == nil && v
}
