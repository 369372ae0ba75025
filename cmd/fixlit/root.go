package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fixlit",
	Short: "fixlit - inspect fixed-point literals",
	Long: `fixlit splits a fixed-point literal into its digit runs, shifts the radix
point by the exponent and converts the result to a binary fixed-point format.

Literals may be decimal, 0b binary, 0o octal or 0x hexadecimal, grouped with
'_', and carry an e, @ or p exponent of any size.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
