// ABOUTME: HLD generation readiness validation over the full planning state
// ABOUTME: Returns blocking errors and advisory warnings; warnings never block

package models

import "fmt"

// HLDNodeConfig is one node inside a destination cluster configuration.
type HLDNodeConfig struct {
	Name     string  `json:"name"`
	CPUCores int     `json:"cpuCores"`
	MemoryGB float64 `json:"memoryGb"`
}

// HLDClusterConfig is a destination cluster as captured by the planning UI.
// A cluster with an empty name or no nodes counts as incomplete.
type HLDClusterConfig struct {
	Name  string          `json:"name"`
	Nodes []HLDNodeConfig `json:"nodes"`
}

// NetworkMapping pairs a source VLAN with its destination. A mapping missing
// either side counts as incomplete.
type NetworkMapping struct {
	SourceVLAN      string `json:"sourceVlan"`
	DestinationVLAN string `json:"destinationVlan"`
}

// CapacityCheck is the slice of a prior capacity analysis that readiness
// validation cares about. A nil CapacityCheck means no analysis was run.
type CapacityCheck struct {
	IsSufficient bool `json:"isSufficient"`
}

// HLDValidationInput is the planning state snapshot inspected before an HLD
// may be generated. It is rebuilt from scratch on every planning change,
// never cached.
type HLDValidationInput struct {
	SelectedRVToolsID *string            `json:"selectedRvtoolsId"`
	TotalVMCount      int                `json:"totalVmCount"`
	FilteredVMCount   int                `json:"filteredVmCount"`
	Clusters          []HLDClusterConfig `json:"clusters"`
	CapacityAnalysis  *CapacityCheck     `json:"capacityAnalysis,omitempty"`
	NetworkMappings   []NetworkMapping   `json:"networkMappings"`
}

// HLDValidationResult gates design document generation. CanGenerate is true
// exactly when there are no errors; warnings are advisory only.
type HLDValidationResult struct {
	CanGenerate bool     `json:"canGenerate"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
}

// ValidateHLDReadiness decides whether enough planning state exists to
// produce a non-trivial design document. Readiness is distinct from capacity
// sufficiency: an insufficient capacity analysis only warns.
func ValidateHLDReadiness(input HLDValidationInput) HLDValidationResult {
	errors := []string{}
	warnings := []string{}

	if input.SelectedRVToolsID == nil {
		errors = append(errors, "No RVTools inventory selected")
	}
	if len(input.Clusters) == 0 {
		errors = append(errors, "No destination clusters configured")
	}

	// VM selection coverage. Exactly half the inventory does not warn; the
	// comparison is strict.
	if input.FilteredVMCount == 0 {
		warnings = append(warnings, msgNoVMs)
	} else if input.FilteredVMCount*2 < input.TotalVMCount {
		warnings = append(warnings, fmt.Sprintf("Only %d of %d VMs selected for migration", input.FilteredVMCount, input.TotalVMCount))
	}

	incomplete := 0
	for _, cluster := range input.Clusters {
		if cluster.Name == "" || len(cluster.Nodes) == 0 {
			incomplete++
		}
	}
	if incomplete > 0 {
		warnings = append(warnings, fmt.Sprintf("%d cluster(s) have incomplete configurations.", incomplete))
	}

	if input.CapacityAnalysis == nil {
		warnings = append(warnings, "Capacity analysis not performed.")
	} else if !input.CapacityAnalysis.IsSufficient {
		warnings = append(warnings, "Cluster capacity may be insufficient for the selected VMs")
	}

	if len(input.NetworkMappings) == 0 {
		warnings = append(warnings, "No network mappings configured.")
	} else {
		missing := 0
		for _, mapping := range input.NetworkMappings {
			if mapping.SourceVLAN == "" || mapping.DestinationVLAN == "" {
				missing++
			}
		}
		if missing > 0 {
			warnings = append(warnings, fmt.Sprintf("%d network mapping(s) are incomplete.", missing))
		}
	}

	return HLDValidationResult{
		CanGenerate: len(errors) == 0,
		Errors:      errors,
		Warnings:    warnings,
	}
}
