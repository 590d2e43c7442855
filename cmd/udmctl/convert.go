package main

import (
	"fmt"

	"github.com/pragma-engine/udm"
	"github.com/spf13/cobra"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "", `output form: "ascii" or "binary" (required)`)
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out> --to=ascii|binary",
		Short: "Convert a document between UDM binary and ASCII form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func runConvert(args []string) error {
	in, out := args[0], args[1]
	d, err := udm.Load(in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer d.Close()

	switch convertTo {
	case "ascii":
		if err := d.SaveAscii(out); err != nil {
			return fmt.Errorf("save ascii: %w", err)
		}
	case "binary":
		if err := d.Save(out); err != nil {
			return fmt.Errorf("save binary: %w", err)
		}
	default:
		return fmt.Errorf(`--to must be "ascii" or "binary", got %q`, convertTo)
	}
	printVerbose("wrote %s\n", out)
	return nil
}
