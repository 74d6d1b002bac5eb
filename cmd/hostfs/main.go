// Command hostfs runs filesystem operations on native paths.
package main

import (
	"context"
	"os"

	"lesiw.io/hostfs/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
