package cli

import (
	"github.com/spf13/cobra"
)

func newOutlookCmd(env *environment) *cobra.Command {
	var (
		levels  map[string]int
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "outlook",
		Short: "Compare a policy mix with business-as-usual against the sustainability threshold",
		Example: `  npcc outlook --level renewable_energy=100
  npcc outlook --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.container(cmd)
			if err != nil {
				return err
			}
			if summary {
				return env.print(cmd.OutOrStdout(), c.Climate.Summary())
			}

			inputs, err := levelInputs(levels)
			if err != nil {
				return err
			}
			return env.print(cmd.OutOrStdout(), c.Climate.Outlook(c.Calculator.Calculate(inputs)))
		},
	}
	levelFlag(cmd, &levels)
	cmd.Flags().BoolVar(&summary, "summary", false, "print the historical climate summary instead")

	return cmd
}
