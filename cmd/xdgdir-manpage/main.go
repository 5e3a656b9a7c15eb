package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/pyk/xdgdir/internal/cli"
	"github.com/pyk/xdgdir/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "XDGDIR",
		Section: "1",
		Source:  "xdgdir " + version.Version,
		Manual:  "xdgdir manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
