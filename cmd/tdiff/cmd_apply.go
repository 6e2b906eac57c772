package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/odvcencio/textdiff/pkg/udiff"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var reverse bool
	var maxFuzz int
	var output string

	cmd := &cobra.Command{
		Use:   "apply <patch> <target>",
		Short: "Apply a unified diff to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patchData, err := readPatchFile(args[0])
			if err != nil {
				return err
			}
			p, err := udiff.ParseStrict(patchData)
			if err != nil {
				return err
			}
			if reverse {
				p = p.Reverse()
			}

			base, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			out, err := udiff.Apply(base, p, &udiff.ApplyOptions{MaxFuzz: maxFuzz})
			if err != nil {
				var aerr *udiff.ApplyError
				if errors.As(err, &aerr) {
					return fmt.Errorf("%s: hunk %d does not apply (%d positions tried)",
						args[1], aerr.HunkIndex+1, len(aerr.Tried))
				}
				return err
			}

			if output != "" {
				return os.WriteFile(output, out, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "R", false, "apply the patch backwards")
	cmd.Flags().IntVar(&maxFuzz, "max-fuzz", 0, "maximum hunk displacement in lines, 0 for the whole file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
