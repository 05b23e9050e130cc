// ABOUTME: Capacity validation for proposed migrations
// ABOUTME: Separates hard blockers (over 100% utilization) from advisory warnings

package models

import "fmt"

// CapacityValidation is the pass/fail verdict for a proposed migration.
// Warnings never affect IsValid.
type CapacityValidation struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Soft-warning band: utilization in [90, 100] is flagged for CPU and memory.
// Storage deliberately gets no soft warning; storage headroom is treated as
// less urgent than compute headroom.
const veryHighUtilization = 90.0

// ValidateCapacity checks whether the selected VMs fit the destination
// clusters. Zero clusters is the single fatal condition and short-circuits
// the analysis; any resource over 100% utilization is a hard error.
func ValidateCapacity(vms []VMResourceRequirement, clusters []ClusterCapacity) CapacityValidation {
	errors := []string{}
	warnings := []string{}

	if len(clusters) == 0 {
		return CapacityValidation{
			IsValid:  false,
			Errors:   []string{"No destination clusters configured"},
			Warnings: warnings,
		}
	}

	result := AnalyzeCapacity(vms, clusters)

	if len(vms) == 0 {
		warnings = append(warnings, msgNoVMs)
	}

	for _, r := range []struct {
		name        string
		utilization float64
		softWarning bool
	}{
		{ResourceCPU, result.CPUUtilization, true},
		{ResourceMemory, result.MemoryUtilization, true},
		{ResourceStorage, result.StorageUtilization, false},
	} {
		if r.utilization > 100 {
			errors = append(errors, fmt.Sprintf("%s capacity insufficient: %.1f%% utilization (over 100%%)", r.name, r.utilization))
			continue
		}
		if r.softWarning && r.utilization >= veryHighUtilization {
			warnings = append(warnings, fmt.Sprintf("%s utilization very high: %.1f%% (recommended < 90%%)", r.name, r.utilization))
		}
	}

	return CapacityValidation{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
