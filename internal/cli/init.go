package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/eulerseq/internal/infra/fsworkspace"
	"github.com/aalvaropc/eulerseq/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create an eulerseq workspace (eulerseq.yaml, suites/, runs/)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace initialized at %s\n", root)
			fmt.Fprintln(out, "Try: eulerseq run --suite euler")
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing template files")
	return c
}
