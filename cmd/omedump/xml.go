package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keithschulze/omemeta"
)

var xmlCmd = &cobra.Command{
	Use:   "xml [file]",
	Short: "Print the raw OME-XML a file resolves to",
	Long: `Print the OME-XML metadata document backing a file: the file contents
for OME-XML files, or the bridged extractor's output for proprietary
formats.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reader, err := omemeta.Read(args[0], readOpts()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			os.Exit(1)
		}
		os.Stdout.Write(reader.XML())
	},
}

func init() {
	rootCmd.AddCommand(xmlCmd)
}
