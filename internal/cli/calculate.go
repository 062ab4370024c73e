package cli

import (
	"github.com/spf13/cobra"
)

func newCalculateCmd(env *environment) *cobra.Command {
	var levels map[string]int

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project the impact of a set of lever levels",
		Example: `  npcc calculate --level renewable_energy=100 --level carbon_tax=50
  npcc calculate -l ev_adoption=60,public_transport=40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs, err := levelInputs(levels)
			if err != nil {
				return err
			}

			c, err := env.container(cmd)
			if err != nil {
				return err
			}
			return env.print(cmd.OutOrStdout(), c.Calculator.Calculate(inputs))
		},
	}
	levelFlag(cmd, &levels)

	return cmd
}
