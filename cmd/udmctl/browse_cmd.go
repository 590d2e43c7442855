package main

import (
	"fmt"

	"github.com/pragma-engine/udm"
	"github.com/pragma-engine/udm/cmd/udmctl/browse"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBrowseCmd())
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Open a read-only tree browser over a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := udm.Open(args[0])
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			defer d.Close()
			return browse.Run(d)
		},
	}
}
