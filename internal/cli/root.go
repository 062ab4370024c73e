// Package cli implements the npcc command line: offline policy projections
// over the embedded reference tables.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/npcc/npcc/internal/di"
	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/logger"
)

// NewRootCmd creates the root Cobra command for the npcc CLI.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logLevel string
		compact  bool
	)

	cmd := &cobra.Command{
		Use:           "npcc",
		Short:         "National Policy Command Centre projections",
		Long:          "npcc: project the fiscal and climate impact of policy lever settings",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level written to stderr (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&compact, "compact", false, "print JSON on a single line")

	env := &environment{logLevel: &logLevel, compact: &compact}
	cmd.AddCommand(
		newCalculateCmd(env),
		newBaselineCmd(env),
		newOutlookCmd(env),
	)

	return cmd
}

// environment carries persistent flag values to subcommands.
type environment struct {
	logLevel *string
	compact  *bool
}

// container wires the offline services. Generators are never configured.
func (e *environment) container(cmd *cobra.Command) (*di.Container, error) {
	log := logger.New(logger.Config{
		Level:  *e.logLevel,
		Pretty: true,
		Output: cmd.ErrOrStderr(),
	})

	ref, err := reference.Load()
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	return di.NewContainer(ref, nil, nil, log), nil
}

func (e *environment) print(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if !*e.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// levelFlag registers the repeatable --level flag on cmd.
func levelFlag(cmd *cobra.Command, target *map[string]int) {
	cmd.Flags().StringToIntVarP(target, "level", "l", map[string]int{},
		"lever level as lever=value, repeatable (e.g. --level ev_adoption=60)")
}

// levelInputs validates lever names and converts flag values to raw inputs.
func levelInputs(levels map[string]int) (map[string]interface{}, error) {
	inputs := make(map[string]interface{}, len(levels))
	var unknown []string
	for name, level := range levels {
		if _, ok := reference.ParseLever(name); !ok {
			unknown = append(unknown, name)
			continue
		}
		inputs[name] = level
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown lever(s) %v; valid levers are %v", unknown, reference.AllLevers())
	}
	return inputs, nil
}
