package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/manifest"
	"signal-sticker-tool/src/preview"
)

func newPreviewCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Regenerate the HTML preview from the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(packDir(cmd))
			if err != nil {
				return err
			}
			path, err := preview.Render(m, m.Dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return nil
		},
	}
}
