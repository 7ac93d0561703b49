package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/shareurl"
	"signal-sticker-tool/src/transfer"
)

func newDownloadCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "download <pack-url-or-id> [pack-key]",
		Short: "Download a pack into the directory",
		Long: "Accepts a signal.art sharing URL, or a bare pack id " +
			"followed by its key, and writes the pack's manifest, image " +
			"files, preview and result file into the pack directory. " +
			"Refuses to touch a directory that already has a manifest.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 2 {
				key = args[1]
			}
			id, key, err := shareurl.Resolve(args[0], key)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return transfer.Download(ctx, client, id, key, packDir(cmd), stdout)
		},
	}
}
