package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/credentials"
)

func newLogoutCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credentials.Delete(credentialsPath(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Logged out.")
			return nil
		},
	}
}
