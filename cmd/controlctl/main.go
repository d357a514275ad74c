// Command controlctl inspects and browses control trees built from layout
// documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/control/cmd/controlctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
