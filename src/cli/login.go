package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/credentials"
	"signal-sticker-tool/src/ui"
)

func newLoginCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store Signal account credentials for uploading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := ui.NewPrompter(stdin, stdout)
			username, err := prompter.ReadLine("Username")
			if err != nil {
				return err
			}
			if username == "" {
				return ui.Abortf("username must not be empty")
			}
			password, err := prompter.ReadPassword("Password")
			if err != nil {
				return err
			}
			if password == "" {
				return ui.Abortf("password must not be empty")
			}
			path := credentialsPath(cmd)
			if err := credentials.Save(path, credentials.Credentials{Username: username, Password: password}); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Credentials saved to %s\n", path)
			return nil
		},
	}
}
