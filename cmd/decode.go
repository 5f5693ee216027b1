package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/file"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <png> <type>",
	Short: "Read a hidden message from a PNG",
	Long:  `Prints the payload of the first chunk with the given type.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decode(args[0], args[1])
	},
}

func decode(path, typeText string) error {
	p, err := file.ReadPng(path)
	if err != nil {
		return err
	}

	c := p.ChunkByType(typeText)
	if c == nil {
		return fmt.Errorf("no %q chunk in %s", typeText, path)
	}

	message, err := c.Text()
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}
