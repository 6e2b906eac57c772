package main

import (
	"github.com/odvcencio/textdiff/pkg/udiff"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "show <patch>",
		Short: "Parse, validate, and re-render a patch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readPatchFile(args[0])
			if err != nil {
				return err
			}
			p, err := udiff.Parse(data)
			if err != nil {
				return err
			}
			text := udiff.FormatPatch(p, &udiff.FormatOptions{Color: useColor(colorMode)})
			_, err = cmd.OutOrStdout().Write(text)
			return err
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")

	return cmd
}
