package main

import (
	"errors"
	"os"

	"github.com/odvcencio/textdiff/pkg/udiff"
	"github.com/spf13/cobra"
)

var errConflicts = errors.New("merge: conflicts found")

func newMergeCmd() *cobra.Command {
	var twoWay bool
	var output string
	var configPath string
	var labels []string

	cmd := &cobra.Command{
		Use:   "merge <ancestor> <ours> <theirs>",
		Short: "Three-way merge two files against their common ancestor",
		Long: "Three-way merge two derived files against their common ancestor,\n" +
			"writing conflict markers where both sides changed the same region.\n" +
			"Exits with status 1 when any conflict was emitted.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			ancestor, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ours, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			theirs, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}

			opts := udiff.NewMergeOptions()
			if twoWay {
				opts.Style = udiff.TwoWay
			}
			applyMarkerConfig(opts, cfg.Markers)
			if len(labels) > 0 {
				opts.MarkerOurs = "<<<<<<< " + labels[0]
			}
			if len(labels) > 1 {
				opts.MarkerAncestor = "||||||| " + labels[1]
			}
			if len(labels) > 2 {
				opts.MarkerTheirs = ">>>>>>> " + labels[2]
			}

			merged, conflicts := udiff.Merge(ancestor, ours, theirs, opts)

			if output != "" {
				if err := os.WriteFile(output, merged, 0o644); err != nil {
					return err
				}
			} else if _, err := cmd.OutOrStdout().Write(merged); err != nil {
				return err
			}

			if conflicts {
				return errConflicts
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&twoWay, "two-way", false, "omit the ancestor block from conflict regions")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a tdiff config file")
	cmd.Flags().StringArrayVarP(&labels, "label", "L", nil, "conflict labels: ours, ancestor, theirs (repeatable)")

	return cmd
}

func applyMarkerConfig(opts *udiff.MergeOptions, m MarkerConfig) {
	if m.Ours != "" {
		opts.MarkerOurs = m.Ours
	}
	if m.Ancestor != "" {
		opts.MarkerAncestor = m.Ancestor
	}
	if m.Separator != "" {
		opts.MarkerSeparator = m.Separator
	}
	if m.Theirs != "" {
		opts.MarkerTheirs = m.Theirs
	}
}
