package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/manifest"
)

func newBootstrapCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Generate a manifest for a getstickerpack.com download",
		Long: "Builds stickers.yaml for a directory downloaded from " +
			"getstickerpack.com: title and author are read from " +
			"title.txt/author.txt, the tray image becomes the cover, " +
			"sticker_<n> files are ordered numerically and every sticker " +
			"gets a sequential placeholder emoji to edit afterwards.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := packDir(cmd)
			if err := manifest.Bootstrap(dir); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s in %s\n", manifest.FileName, dir)
			return nil
		},
	}
}
