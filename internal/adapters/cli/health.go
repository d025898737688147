package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/platform/health"
)

func newHealthCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report the state of the Planfix connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := health.Summarize(rt.app.Health.CheckAll(cmd.Context()))
			if err := writeJSON(rt.stdout, report); err != nil {
				return err
			}
			if report.Status != health.StatusOK {
				return errUnhealthy
			}
			return nil
		},
	}
}
