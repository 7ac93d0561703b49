package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/manifest"
)

func newInitCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var title string
	var author string
	var coverStem string
	var readEmojis bool
	var update bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Build or update the manifest from the directory contents",
		Long: "Scans the pack directory for image files and writes " +
			"stickers.yaml. An existing manifest is only rewritten with " +
			"-u, and its title, author and emoji assignments are reused " +
			"for anything not specified on the command line.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := manifest.BuildOptions{
				Title:     title,
				Author:    author,
				CoverStem: coverStem,
				Update:    update,
			}
			if readEmojis {
				opts.EmojiSource = stdin
			}
			dir := packDir(cmd)
			if err := manifest.Build(dir, opts); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s in %s\n", manifest.FileName, dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "T", "", "Pack title")
	cmd.Flags().StringVarP(&author, "author", "A", "", "Pack author")
	cmd.Flags().StringVarP(&coverStem, "cover", "C", "cover", "Filename stem of the cover image")
	cmd.Flags().BoolVarP(&readEmojis, "read-emojis", "E", false, "Read emoji assignments from stdin, one per non-blank line")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "Allow updating an existing manifest")
	return cmd
}
