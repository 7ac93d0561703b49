package main

import (
	"os"

	"signal-sticker-tool/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
