package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/file"
)

func init() {
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print <png>",
	Short: "List every chunk in a PNG",
	Long:  `Lists type, length, crc and property flags for every chunk in the file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printChunks(args[0])
	},
}

func flagChar(set bool) string {
	if set {
		return "y"
	}
	return "-"
}

func printChunks(path string) error {
	p, err := file.ReadPng(path)
	if err != nil {
		return err
	}

	fmt.Printf("%v: %v chunks\n", path, len(p.Chunks()))
	for i, c := range p.Chunks() {
		t := c.Type()
		fmt.Printf("%3d  %-10v  %8d bytes  crc %10d  critical:%s public:%s safe-to-copy:%s\n",
			i, t, c.Length(), c.CRC(),
			flagChar(t.IsCritical()), flagChar(t.IsPublic()), flagChar(t.IsSafeToCopy()))
		if !t.IsValid() {
			fmt.Printf("     warning: reserved bit set on %v\n", t)
		}
	}
	return nil
}
