// ABOUTME: Readiness command for migplan CLI
// ABOUTME: Reports whether planning state is complete enough for HLD generation

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmigrate/capacity-planner/models"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness <planning.json>",
	Short: "Check HLD generation readiness",
	Long: `Readiness inspects a planning state file and reports blocking errors and
advisory warnings.

Exit codes:
  0 - Ready to generate
  1 - Blocked by one or more errors
  2 - Error (unreadable planning file)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runReadiness(args[0], os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(readinessCmd)
}

// runReadiness executes the readiness check and returns exit code
func runReadiness(path string, w io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error: reading planning file: %v\n", err)
		return 2
	}

	var input models.HLDValidationInput
	if err := json.Unmarshal(data, &input); err != nil {
		fmt.Fprintf(w, "Error: parsing planning file %s: %v\n", path, err)
		return 2
	}

	result := models.ValidateHLDReadiness(input)

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintln(w, formatReadinessHuman(result))
	}

	if !result.CanGenerate {
		return 1
	}
	return 0
}

// formatReadinessHuman renders the readiness result for terminal display
func formatReadinessHuman(result models.HLDValidationResult) string {
	var output string

	for _, e := range result.Errors {
		output += fmt.Sprintf("✗ %s\n", e)
	}
	for _, warning := range result.Warnings {
		output += fmt.Sprintf("! %s\n", warning)
	}

	if result.CanGenerate {
		output += "\nREADY: HLD can be generated"
	} else {
		output += fmt.Sprintf("\nBLOCKED: %d error(s) must be resolved", len(result.Errors))
	}

	return output
}
