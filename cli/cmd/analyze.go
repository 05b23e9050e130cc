// ABOUTME: Analyze command for migplan CLI
// ABOUTME: Runs the full capacity analysis over a plan file

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openmigrate/capacity-planner/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <plan.json>",
	Short: "Analyze capacity utilization for a migration plan",
	Long: `Analyze computes per-resource utilization, bottleneck warnings, and an
overall status for the plan's VMs against its destination clusters.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runAnalyze(args[0], os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var titleStyle = lipgloss.NewStyle().Bold(true)

// statusStyle colors text by utilization tier, matching the dashboard palette.
func statusStyle(utilization float64) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(models.StatusColor(utilization)))
}

// runAnalyze executes the analysis and returns exit code
func runAnalyze(path string, w io.Writer) int {
	p, err := loadPlan(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result := models.AnalyzeCapacity(p.VMs, p.Clusters)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatAnalysisHuman(result))
	}

	if result.OverallStatus == models.StatusError {
		return 2
	}
	return 0
}

// formatAnalysisHuman renders the analysis result for terminal display
func formatAnalysisHuman(result models.CapacityAnalysisResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Capacity Analysis"))
	b.WriteString("\n\n")

	rows := []struct {
		name string
		util float64
		cap  string
	}{
		{models.ResourceCPU, result.CPUUtilization, models.FormatCPU(result.Metrics.CPU.Effective)},
		{models.ResourceMemory, result.MemoryUtilization, models.FormatMemory(result.Metrics.Memory.Effective)},
		{models.ResourceStorage, result.StorageUtilization, models.FormatStorage(result.Metrics.Storage.Effective)},
	}
	for _, row := range rows {
		label := statusStyle(row.util).Render(models.StatusLabel(row.util))
		fmt.Fprintf(&b, "  %-8s %5.1f%% of %-10s %s\n", row.name, row.util, row.cap, label)
	}

	fmt.Fprintf(&b, "\n  Overall: %s (%.1f%% weighted)\n",
		statusStyle(result.Metrics.OverallUtilization).Render(string(result.OverallStatus)),
		result.Metrics.OverallUtilization)

	if len(result.Bottlenecks) > 0 {
		b.WriteString("\nBottlenecks:\n")
		for _, warning := range result.Bottlenecks {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", warning.Severity, warning.Resource, warning.Message)
			fmt.Fprintf(&b, "        %s\n", warning.Recommendation)
		}
	}

	return b.String()
}
