// ABOUTME: Capacity utilization analysis for migration planning
// ABOUTME: Combines cluster supply and VM demand into utilization percentages and overall status

package models

// HealthStatus classifies overall capacity health.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusModerate HealthStatus = "moderate"
	StatusHigh     HealthStatus = "high"
	StatusCritical HealthStatus = "critical"
	// StatusError is reserved for the no-clusters-configured case.
	StatusError HealthStatus = "error"
)

// Utilization thresholds shared project-wide for status classification,
// labels, and colors.
const (
	ThresholdHealthy  = 70.0
	ThresholdModerate = 80.0
	ThresholdHigh     = 90.0
	ThresholdCritical = 95.0
)

// CapacityAnalysisResult is the top-level output of AnalyzeCapacity.
type CapacityAnalysisResult struct {
	CPUUtilization     float64             `json:"cpuUtilization"`
	MemoryUtilization  float64             `json:"memoryUtilization"`
	StorageUtilization float64             `json:"storageUtilization"`
	Bottlenecks        []BottleneckWarning `json:"bottlenecks"`
	OverallStatus      HealthStatus        `json:"overallStatus"`
	Metrics            CapacityMetrics     `json:"metrics"`
}

// AnalyzeCapacity computes per-resource utilization, bottleneck warnings, and
// an overall status for the proposed migration. It is a pure transform: no
// state, no errors. Two edge cases short-circuit the analysis:
//   - no clusters: status "error" with a single critical Configuration warning
//   - no VMs: status "healthy" with a single info Configuration warning
func AnalyzeCapacity(vms []VMResourceRequirement, clusters []ClusterCapacity) CapacityAnalysisResult {
	if len(clusters) == 0 {
		return CapacityAnalysisResult{
			Bottlenecks:   []BottleneckWarning{noClustersWarning()},
			OverallStatus: StatusError,
			Metrics:       CalculateTotalCapacity(nil),
		}
	}

	metrics := CalculateTotalCapacity(clusters)

	if len(vms) == 0 {
		return CapacityAnalysisResult{
			Bottlenecks:   []BottleneckWarning{noVMsWarning()},
			OverallStatus: StatusHealthy,
			Metrics:       metrics,
		}
	}

	demand := CalculateTotalDemand(vms)

	cpuUtil := utilizationPercent(demand.CPUGhz, metrics.CPU.Effective)
	memUtil := utilizationPercent(demand.MemoryGB, metrics.Memory.Effective)
	storUtil := utilizationPercent(demand.StorageTB, metrics.Storage.Effective)

	allocate(&metrics.CPU, demand.CPUGhz, cpuUtil)
	allocate(&metrics.Memory, demand.MemoryGB, memUtil)
	allocate(&metrics.Storage, demand.StorageTB, storUtil)
	metrics.OverallUtilization = cpuWeight*cpuUtil + memoryWeight*memUtil + storageWeight*storUtil

	return CapacityAnalysisResult{
		CPUUtilization:     cpuUtil,
		MemoryUtilization:  memUtil,
		StorageUtilization: storUtil,
		Bottlenecks:        DetectBottlenecks(cpuUtil, memUtil, storUtil),
		OverallStatus:      ClassifyStatus(cpuUtil, memUtil, storUtil),
		Metrics:            metrics,
	}
}

// ClassifyStatus maps the worst of the three utilizations to an overall
// status. Boundary values belong to the higher severity tier: exactly 70 is
// moderate, exactly 90 is critical.
func ClassifyStatus(cpu, memory, storage float64) HealthStatus {
	max := cpu
	if memory > max {
		max = memory
	}
	if storage > max {
		max = storage
	}

	switch {
	case max >= ThresholdHigh:
		return StatusCritical
	case max >= ThresholdModerate:
		return StatusHigh
	case max >= ThresholdHealthy:
		return StatusModerate
	default:
		return StatusHealthy
	}
}

// utilizationPercent returns demand as a percentage of effective capacity,
// or 0 when there is no effective capacity to divide by.
func utilizationPercent(demand, effective float64) float64 {
	if effective == 0 {
		return 0
	}
	return demand / effective * 100
}

func allocate(m *ResourceMetrics, demand, utilization float64) {
	m.Allocated = demand
	m.Available = m.Effective - demand
	m.Utilization = utilization
}
