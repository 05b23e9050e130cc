// ABOUTME: Entry point for migplan CLI
// ABOUTME: Command-line tool for capacity analysis and CI/CD migration gates

package main

import (
	"fmt"
	"os"

	"github.com/openmigrate/capacity-planner/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
