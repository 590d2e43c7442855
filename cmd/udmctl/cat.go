package main

import (
	"fmt"
	"os"

	"github.com/pragma-engine/udm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCatCmd())
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file> [path]",
		Short: "Print a document, or a single property at path",
		Long: `cat loads a UDM document and prints it. With a path argument it uses
LoadProperty instead, which skip-scans a binary document straight to the
requested property without decoding its siblings.

Example:
  udmctl cat scene.udm
  udmctl cat scene.udm /entities/0/transform`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
}

func runCat(args []string) error {
	path := args[0]
	printVerbose("Opening %s\n", path)
	d, err := udm.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer d.Close()

	if len(args) == 2 {
		prop, err := d.LoadProperty(args[1])
		if err != nil {
			return fmt.Errorf("load property: %w", err)
		}
		text, err := prop.To(udm.String)
		if err != nil {
			printInfo("%s %v\n", prop.Type, prop.Value)
			return nil
		}
		printInfo("%s %v\n", prop.Type, text)
		return nil
	}

	if jsonOut {
		return d.WriteJSON(os.Stdout)
	}
	_, err = os.Stdout.Write(udm.WriteAscii(d.Root()))
	return err
}
