package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/schemer/cmd/schemer"
	"github.com/arthur-debert/schemer/internal/version"
)

func main() {
	rootCmd := schemer.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SCHEMER",
		Section: "1",
		Source:  "schemer " + version.Version,
		Manual:  "schemer manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
