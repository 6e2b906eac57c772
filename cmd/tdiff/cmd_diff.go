package main

import (
	"os"

	"github.com/odvcencio/textdiff/pkg/udiff"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var contextLen int
	var colorMode string
	var output string
	var configPath string
	var labels []string

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Create a unified diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("unified") {
				contextLen = cfg.Context
			}
			if !cmd.Flags().Changed("color") {
				colorMode = cfg.Color
			}

			oldData, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			newData, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			opts := udiff.NewDiffOptions()
			opts.ContextLen = contextLen
			opts.OriginalFilename = args[0]
			opts.ModifiedFilename = args[1]
			if len(labels) > 0 {
				opts.OriginalFilename = labels[0]
			}
			if len(labels) > 1 {
				opts.ModifiedFilename = labels[1]
			}

			p := udiff.CreatePatch(oldData, newData, opts)

			if output != "" {
				return writePatchFile(output, udiff.FormatPatch(p, nil))
			}
			text := udiff.FormatPatch(p, &udiff.FormatOptions{Color: useColor(colorMode)})
			_, err = cmd.OutOrStdout().Write(text)
			return err
		},
	}

	cmd.Flags().IntVarP(&contextLen, "unified", "U", 3, "lines of context around each change")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the patch to a file instead of stdout (.zst compresses)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a tdiff config file")
	cmd.Flags().StringArrayVarP(&labels, "label", "L", nil, "use as the header name instead of the file path (repeatable)")

	return cmd
}
