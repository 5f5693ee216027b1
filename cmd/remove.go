package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/file"
	"github.com/pngstash/pngstash/png"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <png> <type>",
	Short: "Remove a hidden message from a PNG",
	Long:  `Removes the first chunk with the given type and rewrites the file in place.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Remove(args[0], args[1])
	},
}

func Remove(path, typeText string) error {
	return file.UpdatePng(path, func(p *png.Png) error {
		removed, err := p.RemoveFirstChunk(typeText)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %v\n", removed)
		return nil
	})
}
