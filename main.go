// Package main is the entrypoint of the crs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/crs/cmd"
	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/iocache"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer contract.SyncLogger()
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
