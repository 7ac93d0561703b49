package cli

import (
	"github.com/spf13/cobra"

	"signal-sticker-tool/src/credentials"
)

// addGlobalFlags adds the persistent path flags every command shares.
// The credentials default is computed once here, at command
// construction, not read ad hoc later.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("dir", "d", ".", "Sticker pack directory")
	cmd.PersistentFlags().StringP("credentials", "c", credentials.DefaultPath(), "Credentials file path")
}

// packDir reads the pack directory global flag.
func packDir(cmd *cobra.Command) string {
	dir, _ := cmd.Root().PersistentFlags().GetString("dir")
	return dir
}

// credentialsPath reads the credentials file global flag.
func credentialsPath(cmd *cobra.Command) string {
	path, _ := cmd.Root().PersistentFlags().GetString("credentials")
	return path
}
