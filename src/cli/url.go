package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/shareurl"
	"signal-sticker-tool/src/transfer"
	"signal-sticker-tool/src/ui"
)

func newURLCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the sharing URL of an uploaded pack",
		Long: "Prints only the web sharing URL recorded in uploaded.yaml, " +
			"with no decoration, so the output can be piped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(packDir(cmd))
			if err != nil {
				return err
			}
			ref, ok, err := transfer.LoadResult(dir)
			if err != nil {
				return err
			}
			if !ok {
				return ui.Abortf("no %s found in %s; upload the pack first", transfer.ResultFileName, dir)
			}
			fmt.Fprintln(stdout, shareurl.WebURL(ref.ID, ref.Key))
			return nil
		},
	}
}
