// SPDX-License-Identifier: MIT

// Command lvtad calls hierarchical TADs from Hi-C contact matrices.
//
//	lvtad call --levels 3 --min-size 5 chr1.tsv.gz chr2.tsv.gz > tads.bed
//	lvtad call --format bedpe --policy silhouette --quality-filter chr1.bed
//	lvtad version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=…".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvtad",
		Short:        "Hierarchical spectral TAD caller",
		SilenceUsage: true,
		Long: `lvtad slides a window along the diagonal of a chromosome contact matrix,
clusters every window spectrally and recurses into the domains it finds.`,
	}
	root.AddCommand(newCallCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvtad version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lvtad", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
