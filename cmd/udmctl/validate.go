package main

import (
	"fmt"

	"github.com/pragma-engine/udm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document's header parses and every struct member fits its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	d, err := udm.Load(args[0])
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	defer d.Close()

	problems := 0
	validateElement("", d.Root(), &problems)
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	printInfo("ok\n")
	return nil
}

func validateElement(prefix string, el *udm.Element, problems *int) {
	for _, key := range el.Keys() {
		path := joinDiffPath(prefix, key)
		prop := el.Get(key)
		switch prop.Type {
		case udm.Element:
			child, _ := prop.Value.(*udm.Element)
			validateElement(path, child, problems)
		case udm.Struct:
			s, _ := prop.Value.(*udm.StructValue)
			if want, err := s.Description.DataSizeRequirement(); err != nil || want != len(s.Data) {
				printInfo("struct at %s: data length %d does not match description (%d)\n", path, len(s.Data), want)
				*problems++
			}
		case udm.Reference:
			r, _ := prop.Value.(*udm.Reference)
			if r.Property == nil {
				printInfo("reference at %s: %q did not resolve\n", path, r.Path)
				*problems++
			}
		}
	}
}
