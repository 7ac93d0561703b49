package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"signal-sticker-tool/src/ui"
)

// NewRootCmd returns the root cobra command for signal-sticker-tool.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signal-sticker-tool",
		Short: "Manage, preview, upload and download Signal sticker packs",
		Long: "signal-sticker-tool manages local sticker-pack directories " +
			"(a stickers.yaml manifest plus image files), renders a static " +
			"HTML preview, and uploads/downloads packs to and from the " +
			"Signal sticker service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newLoginCmd(stdin, stdout))
	cmd.AddCommand(newLogoutCmd(stdout))
	cmd.AddCommand(newInitCmd(stdin, stdout))
	cmd.AddCommand(newUploadCmd(stdout))
	cmd.AddCommand(newDownloadCmd(stdout))
	cmd.AddCommand(newPreviewCmd(stdout))
	cmd.AddCommand(newURLCmd(stdout))
	cmd.AddCommand(newBootstrapCmd(stdout))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// Execute runs the CLI with the process stdio and returns the exit
// status. This is the single translation point for errors: abort
// conditions print their message as-is, anything unexpected gets the
// generic prefix. Both exit non-zero.
func Execute() int {
	root := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		var abort *ui.AbortError
		if errors.As(err, &abort) {
			fmt.Fprintln(os.Stderr, abort.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
