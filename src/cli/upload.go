package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/transfer"
)

func newUploadCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Upload the pack and print its sharing URLs",
		Long: "Validates the manifest, uploads the pack with the stored " +
			"credentials, records the assigned id/key in uploaded.yaml " +
			"and prints the sharing URLs. A pack with an existing " +
			"uploaded.yaml is not uploaded again; the recorded id/key " +
			"are reprinted instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return transfer.Upload(ctx, client, packDir(cmd), credentialsPath(cmd), stdout)
		},
	}
}
