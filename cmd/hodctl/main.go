package main

import (
	"fmt"
	"os"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/cli"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/version"
)

func main() {
	cmd := cli.NewRootCmd(version.Version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
