package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pngstash",
	Short: "Hide messages in PNG files",
	Long:  `pngstash hides, reads and removes messages stored as custom PNG chunks.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
