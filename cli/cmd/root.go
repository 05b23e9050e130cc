// ABOUTME: Root command for migplan CLI
// ABOUTME: Handles global flags shared by all subcommands

package cmd

import "github.com/spf13/cobra"

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "migplan",
	Short: "CLI for migration capacity planning",
	Long: `migplan analyzes migration plans against destination cluster capacity.

A plan file is a JSON document with the VMs to migrate and the destination
clusters to receive them:

  {
    "vms":      [{"id": "...", "name": "...", "cpus": 4, "memoryMb": 16384, "provisionedMb": 1048576}],
    "clusters": [{"id": "...", "name": "...", "cpuGhz": 2.8, "totalCores": 40, "memoryGb": 384, "storageTb": 30}]
  }`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
