package cli

import (
	"github.com/spf13/cobra"
)

func newBaselineCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Print the starting state: baseline year, BAU projection and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.container(cmd)
			if err != nil {
				return err
			}
			return env.print(cmd.OutOrStdout(), c.Calculator.BaselineState())
		},
	}
}
