package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/eulerseq/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var suite string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a suite without solving anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			suitePath, err := resolveSuitePath(ws, suite)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateSuite(ws.suites)
			if err := uc.Execute(cmd.Context(), suitePath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&suite, "suite", "s", "", "Suite name or path (required)")

	_ = c.MarkFlagRequired("suite")
	return c
}
