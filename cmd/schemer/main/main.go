package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/schemer/cmd/schemer"
	"github.com/arthur-debert/schemer/pkg/ui/styles"
)

func main() {
	rootCmd := schemer.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
