// ABOUTME: Check command for migplan CLI
// ABOUTME: Validates plan capacity for CI/CD pipelines with threshold gates

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmigrate/capacity-planner/models"
)

var utilizationThreshold int

var checkCmd = &cobra.Command{
	Use:   "check <plan.json>",
	Short: "Check plan capacity thresholds",
	Long: `Check validates a plan and exits non-zero if capacity is insufficient
or any resource exceeds the utilization threshold.

Exit codes:
  0 - All checks passed
  1 - Capacity errors or thresholds exceeded
  2 - Error (unreadable plan, invalid input)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runCheck(args[0], os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&utilizationThreshold, "threshold", 90, "Per-resource utilization threshold percentage")
}

// checkResult represents the result of a single threshold check
type checkResult struct {
	name      string
	value     float64
	threshold float64
	passed    bool
}

// runCheck executes the plan checks and returns exit code
func runCheck(path string, w io.Writer) int {
	if utilizationThreshold < 0 || utilizationThreshold > 100 {
		fmt.Fprintln(w, "Error: --threshold must be between 0 and 100")
		return 2
	}

	p, err := loadPlan(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	validation := models.ValidateCapacity(p.VMs, p.Clusters)
	if !validation.IsValid {
		for _, e := range validation.Errors {
			fmt.Fprintf(w, "Error: %s\n", e)
		}
		return 1
	}

	analysis := models.AnalyzeCapacity(p.VMs, p.Clusters)
	results := performChecks(analysis, float64(utilizationThreshold))

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	if _, failed := countResults(results); failed > 0 {
		return 1
	}
	return 0
}

// performChecks compares each resource utilization against the threshold
func performChecks(analysis models.CapacityAnalysisResult, threshold float64) []checkResult {
	checks := []struct {
		name string
		util float64
	}{
		{"CPU utilization", analysis.CPUUtilization},
		{"Memory utilization", analysis.MemoryUtilization},
		{"Storage utilization", analysis.StorageUtilization},
	}

	results := make([]checkResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, checkResult{
			name:      c.name,
			value:     c.util,
			threshold: threshold,
			passed:    c.util <= threshold,
		})
	}
	return results
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var output string

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		output += fmt.Sprintf("%s %s: %.1f%% (threshold: %.0f%%)\n",
			symbol, r.name, r.value, r.threshold)
	}

	passed, failed := countResults(results)
	if failed > 0 {
		output += fmt.Sprintf("\nFAILED: %d check(s) exceeded threshold", failed)
	} else {
		output += fmt.Sprintf("\nPASSED: All %d check(s) within thresholds", passed)
	}

	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		checks[i] = map[string]interface{}{
			"name":      r.name,
			"value":     r.value,
			"threshold": r.threshold,
			"passed":    r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
