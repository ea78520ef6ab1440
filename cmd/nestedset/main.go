// nestedset reads a nested-set snapshot file and prints the reconstructed
// tree, or answers parent, children and path queries against it.
package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger.New(cfg.LogLevel)
	defer logger.OnExit()

	a := &app{cfg: cfg, log: logger.Sugar.WithServiceName("nestedset")}
	if err := newRootCmd(a).Execute(); err != nil {
		return 1
	}
	return 0
}
