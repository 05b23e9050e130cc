// ABOUTME: Bottleneck detection for migration capacity analysis
// ABOUTME: Classifies per-resource utilization into severity tiers with remediation text

package models

// Severity grades a bottleneck warning.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// BottleneckWarning is one diagnostic produced by DetectBottlenecks. It is
// purely descriptive and never mutated after creation.
type BottleneckWarning struct {
	Severity              Severity `json:"severity"`
	Resource              string   `json:"resource"`
	Message               string   `json:"message"`
	Recommendation        string   `json:"recommendation"`
	UtilizationPercentage *float64 `json:"utilizationPercentage,omitempty"`
}

type bottleneckText struct {
	message        string
	recommendation string
}

// bottleneckCatalog centralizes the literal warning strings per resource and
// tier. Downstream UI and tests assert on these substrings; edit with care.
var bottleneckCatalog = map[string]struct {
	shortage    bottleneckText // utilization >= 95
	severe      bottleneckText // 90 <= utilization < 95
	approaching bottleneckText // 80 <= utilization < 90
}{
	ResourceCPU: {
		shortage:    bottleneckText{"Critical CPU capacity shortage", "Reduce CPU allocation significantly or add more CPU capacity before migrating"},
		severe:      bottleneckText{"Severe CPU capacity constraints", "Reduce CPU overcommit ratio or add hosts to the destination clusters"},
		approaching: bottleneckText{"CPU capacity approaching limits", "Consider adding CPU capacity to preserve headroom"},
	},
	ResourceMemory: {
		shortage:    bottleneckText{"Critical Memory capacity shortage", "Reduce Memory allocation significantly or add more Memory capacity before migrating"},
		severe:      bottleneckText{"Severe Memory capacity constraints", "Reduce Memory overcommit ratio or add hosts to the destination clusters"},
		approaching: bottleneckText{"Memory capacity approaching limits", "Consider adding Memory capacity to preserve headroom"},
	},
	ResourceStorage: {
		shortage:    bottleneckText{"Critical Storage capacity shortage", "Reduce Storage allocation significantly or add more Storage capacity before migrating"},
		severe:      bottleneckText{"Severe Storage capacity constraints", "Reduce Storage overcommit ratio or expand the destination datastores"},
		approaching: bottleneckText{"Storage capacity approaching limits", "Consider adding Storage capacity to preserve headroom"},
	},
}

// Configuration diagnostics emitted by AnalyzeCapacity's edge cases.
const (
	msgNoClusters = "No clusters configured"
	recNoClusters = "Add at least one destination cluster before running capacity analysis"
	msgNoVMs      = "No VMs selected for migration"
	recNoVMs      = "Select VMs from the source inventory to analyze placement"
)

// DetectBottlenecks evaluates each resource independently and emits at most
// one warning per resource, in CPU, Memory, Storage order. Resources below
// 80% produce nothing. Each warning carries the exact utilization that
// triggered it.
func DetectBottlenecks(cpu, memory, storage float64) []BottleneckWarning {
	var warnings []BottleneckWarning
	for _, r := range []struct {
		name        string
		utilization float64
	}{
		{ResourceCPU, cpu},
		{ResourceMemory, memory},
		{ResourceStorage, storage},
	} {
		if w, ok := detectResourceBottleneck(r.name, r.utilization); ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// detectResourceBottleneck applies the tier table to one resource. Boundary
// values belong to the higher tier: exactly 95 is a shortage, exactly 90 is
// severe, exactly 80 is approaching.
func detectResourceBottleneck(resource string, utilization float64) (BottleneckWarning, bool) {
	texts := bottleneckCatalog[resource]

	var severity Severity
	var text bottleneckText
	switch {
	case utilization >= ThresholdCritical:
		severity, text = SeverityCritical, texts.shortage
	case utilization >= ThresholdHigh:
		severity, text = SeverityCritical, texts.severe
	case utilization >= ThresholdModerate:
		severity, text = SeverityWarning, texts.approaching
	default:
		return BottleneckWarning{}, false
	}

	u := utilization
	return BottleneckWarning{
		Severity:              severity,
		Resource:              resource,
		Message:               text.message,
		Recommendation:        text.recommendation,
		UtilizationPercentage: &u,
	}, true
}

func noClustersWarning() BottleneckWarning {
	return BottleneckWarning{
		Severity:       SeverityCritical,
		Resource:       ResourceConfiguration,
		Message:        msgNoClusters,
		Recommendation: recNoClusters,
	}
}

func noVMsWarning() BottleneckWarning {
	return BottleneckWarning{
		Severity:       SeverityInfo,
		Resource:       ResourceConfiguration,
		Message:        msgNoVMs,
		Recommendation: recNoVMs,
	}
}
