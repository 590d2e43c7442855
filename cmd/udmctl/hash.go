package main

import (
	"fmt"

	"github.com/pragma-engine/udm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file> [path]",
		Short: "Print a document's (or a single property's) stable content hash",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
}

func runHash(args []string) error {
	d, err := udm.Open(args[0])
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer d.Close()

	prop := &udm.Property{Type: udm.Element, Value: d.Root()}
	if len(args) == 2 {
		prop, err = d.LoadProperty(args[1])
		if err != nil {
			return fmt.Errorf("load property: %w", err)
		}
	}
	h := prop.CalcHash()
	printInfo("%x\n", h)
	return nil
}
