package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/eulerseq/internal/infra/runstore"
)

func runsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsListCmd())
	return c
}

func runsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs (newest last)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			entries, err := ws.store.ListRuns()
			if err != nil {
				return err
			}

			printRuns(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printRuns(w io.Writer, entries []runstore.IndexEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no runs found)")
		return
	}
	for _, e := range entries {
		status := "OK"
		if e.Failures > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(w, "- [%s] %s  suite=%s cases=%d failures=%d  %s\n",
			status, e.ID, e.Suite, e.Cases, e.Failures, e.StartedAt.Format(time.RFC3339))
	}
}
