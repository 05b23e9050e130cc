// ABOUTME: High-level design document generation from planning state
// ABOUTME: Renders a markdown HLD once readiness validation passes

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/openmigrate/capacity-planner/models"
)

// HLDRequest carries everything the generator needs: the planning snapshot
// that gates generation plus the optional capacity analysis to embed.
type HLDRequest struct {
	ProjectName string                         `json:"projectName"`
	Planning    models.HLDValidationInput      `json:"planning"`
	Analysis    *models.CapacityAnalysisResult `json:"analysis,omitempty"`
}

// HLDGenerator renders design documents for migration projects
type HLDGenerator struct{}

// NewHLDGenerator creates a new HLD generator
func NewHLDGenerator() *HLDGenerator {
	return &HLDGenerator{}
}

// Generate validates readiness and renders the HLD as markdown. Blocking
// readiness errors abort generation; advisory warnings are embedded in the
// document's review appendix instead.
func (g *HLDGenerator) Generate(req HLDRequest) (string, error) {
	readiness := models.ValidateHLDReadiness(req.Planning)
	if !readiness.CanGenerate {
		return "", fmt.Errorf("cannot generate HLD: %s", strings.Join(readiness.Errors, "; "))
	}

	var doc strings.Builder

	title := req.ProjectName
	if title == "" {
		title = "Migration Project"
	}
	fmt.Fprintf(&doc, "# High-Level Design: %s\n\n", title)
	fmt.Fprintf(&doc, "_Generated %s_\n\n", time.Now().Format("2006-01-02 15:04 MST"))

	doc.WriteString("## Source Workloads\n\n")
	fmt.Fprintf(&doc, "- VMs selected for migration: %d of %d\n\n",
		req.Planning.FilteredVMCount, req.Planning.TotalVMCount)

	doc.WriteString("## Destination Clusters\n\n")
	doc.WriteString("| Cluster | Nodes |\n|---|---|\n")
	for _, cluster := range req.Planning.Clusters {
		fmt.Fprintf(&doc, "| %s | %d |\n", cluster.Name, len(cluster.Nodes))
	}
	doc.WriteString("\n")

	g.writeCapacitySection(&doc, req.Analysis)
	g.writeNetworkSection(&doc, req.Planning.NetworkMappings)

	if len(readiness.Warnings) > 0 {
		doc.WriteString("## Review Items\n\n")
		for _, warning := range readiness.Warnings {
			fmt.Fprintf(&doc, "- %s\n", warning)
		}
		doc.WriteString("\n")
	}

	return doc.String(), nil
}

func (g *HLDGenerator) writeCapacitySection(doc *strings.Builder, analysis *models.CapacityAnalysisResult) {
	doc.WriteString("## Capacity Analysis\n\n")
	if analysis == nil {
		doc.WriteString("*Capacity analysis not performed.*\n\n")
		return
	}

	doc.WriteString("| Resource | Effective Capacity | Demand | Utilization | Status |\n|---|---|---|---|---|\n")
	rows := []struct {
		name        string
		capacity    string
		demand      string
		utilization float64
	}{
		{models.ResourceCPU, models.FormatCPU(analysis.Metrics.CPU.Effective), models.FormatCPU(analysis.Metrics.CPU.Allocated), analysis.CPUUtilization},
		{models.ResourceMemory, models.FormatMemory(analysis.Metrics.Memory.Effective), models.FormatMemory(analysis.Metrics.Memory.Allocated), analysis.MemoryUtilization},
		{models.ResourceStorage, models.FormatStorage(analysis.Metrics.Storage.Effective), models.FormatStorage(analysis.Metrics.Storage.Allocated), analysis.StorageUtilization},
	}
	for _, row := range rows {
		fmt.Fprintf(doc, "| %s | %s | %s | %.1f%% | %s |\n",
			row.name, row.capacity, row.demand, row.utilization, models.StatusLabel(row.utilization))
	}
	fmt.Fprintf(doc, "\nOverall status: **%s** (%.1f%% weighted utilization)\n\n",
		analysis.OverallStatus, analysis.Metrics.OverallUtilization)

	if len(analysis.Bottlenecks) > 0 {
		doc.WriteString("### Bottlenecks\n\n")
		for _, w := range analysis.Bottlenecks {
			fmt.Fprintf(doc, "- **%s** (%s): %s. %s\n", w.Resource, w.Severity, w.Message, w.Recommendation)
		}
		doc.WriteString("\n")
	}
}

func (g *HLDGenerator) writeNetworkSection(doc *strings.Builder, mappings []models.NetworkMapping) {
	doc.WriteString("## Network Mappings\n\n")
	if len(mappings) == 0 {
		doc.WriteString("*No network mappings defined yet.*\n\n")
		return
	}

	doc.WriteString("| Source VLAN | Destination VLAN |\n|---|---|\n")
	for _, mapping := range mappings {
		fmt.Fprintf(doc, "| %s | %s |\n", mapping.SourceVLAN, mapping.DestinationVLAN)
	}
	doc.WriteString("\n")
}
