// Command bootstrapper starts MinEdLauncher.exe with the arguments it was
// given. Launch failures are written to the per-user log; the exit code is
// always 0.
package main

import (
	"bootstrapper/internal/bootstrap"
	"os"
)

func main() {
	os.Exit(bootstrap.Run(os.Args[1:]))
}
