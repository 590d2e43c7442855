package main

import (
	"fmt"

	"github.com/pragma-engine/udm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Report properties that differ between two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
}

func runDiff(args []string) error {
	a, err := udm.Load(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	defer a.Close()
	b, err := udm.Load(args[1])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[1], err)
	}
	defer b.Close()

	changed := 0
	diffElements("", a.Root(), b.Root(), &changed)
	if changed == 0 {
		printInfo("no differences\n")
	}
	return nil
}

// diffElements walks both trees' union of keys, reporting anything added,
// removed, or changed under the slash-separated path built up in prefix.
func diffElements(prefix string, a, b *udm.Element, changed *int) {
	seen := make(map[string]bool)
	for _, key := range a.Keys() {
		seen[key] = true
		path := joinDiffPath(prefix, key)
		pa, pb := a.Get(key), b.Get(key)
		if pb == nil {
			printInfo("- %s\n", path)
			*changed++
			continue
		}
		diffProperty(path, pa, pb, changed)
	}
	for _, key := range b.Keys() {
		if seen[key] {
			continue
		}
		printInfo("+ %s\n", joinDiffPath(prefix, key))
		*changed++
	}
}

func diffProperty(path string, pa, pb *udm.Property, changed *int) {
	if pa.Type == udm.Element && pb.Type == udm.Element {
		ea, _ := pa.Value.(*udm.Element)
		eb, _ := pb.Value.(*udm.Element)
		diffElements(path, ea, eb, changed)
		return
	}
	if !pa.Equal(pb) {
		printInfo("~ %s (%s)\n", path, pa.Type)
		*changed++
	}
}

func joinDiffPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
