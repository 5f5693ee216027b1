package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/chunk"
	"github.com/pngstash/pngstash/file"
	"github.com/pngstash/pngstash/png"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode <png> <type> <message> [output]",
	Short: "Hide a message in a PNG",
	Long:  `Appends a chunk of the given type carrying the message. Without an output path the file is rewritten in place.`,
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := ""
		if len(args) == 4 {
			output = args[3]
		}
		return Encode(args[0], args[1], args[2], output)
	},
}

func Encode(path, typeText, message, output string) error {
	tc, err := chunk.TypeFromString(typeText)
	if err != nil {
		return err
	}
	c := chunk.New(tc, []byte(message))

	if output == "" || output == path {
		// in place: lock so concurrent edits of the same file don't clobber
		return file.UpdatePng(path, func(p *png.Png) error {
			p.AppendChunk(c)
			return nil
		})
	}

	p, err := file.ReadPng(path)
	if err != nil {
		return err
	}
	p.AppendChunk(c)
	if err := file.WritePng(output, p); err != nil {
		return err
	}
	fmt.Printf("Wrote %v\n", output)
	return nil
}
