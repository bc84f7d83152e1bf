package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keithschulze/omemeta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := omemeta.GetVersionInfo()
		fmt.Printf("omedump %s\n", info.Version)
		fmt.Printf("  commit: %s\n", info.GitCommit)
		fmt.Printf("  built:  %s\n", info.BuildTime)
		fmt.Printf("  go:     %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
