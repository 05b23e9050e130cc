// ABOUTME: Data models and aggregation for migration capacity analysis
// ABOUTME: Reduces cluster supply and VM demand into per-resource capacity metrics

package models

// DefaultVMClockGhz is assumed for VMs whose inventory record carries no
// per-core clock speed.
const DefaultVMClockGhz = 2.5

// defaultOvercommit is applied when a cluster has no explicit ratio. A nil
// ratio means "unset"; an explicit 0 is honored as-is.
const defaultOvercommit = 1.0

// Overall utilization weights. CPU and memory dominate migration risk;
// storage is weighted lower. The three must sum to 1.0.
const (
	cpuWeight     = 0.4
	memoryWeight  = 0.4
	storageWeight = 0.2
)

// Resource names used in bottleneck warnings and validation messages.
const (
	ResourceCPU           = "CPU"
	ResourceMemory        = "Memory"
	ResourceStorage       = "Storage"
	ResourceConfiguration = "Configuration"
)

// VMResourceRequirement is one virtual machine's demand, built by the caller
// from inventory data. The engine never mutates it.
type VMResourceRequirement struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CPUs          int      `json:"cpus"`
	MemoryMB      float64  `json:"memoryMb"`
	ProvisionedMB float64  `json:"provisionedMb"`
	CPUGhz        *float64 `json:"cpuGhz,omitempty"` // nil means DefaultVMClockGhz
}

// ClusterCapacity is one destination cluster's supply. Overcommit ratios are
// optional; nil defaults to 1.0 at the point of use so a deliberate 0 is
// never treated as unset.
type ClusterCapacity struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CPUGhz            float64  `json:"cpuGhz"`
	TotalCores        int      `json:"totalCores"`
	MemoryGB          float64  `json:"memoryGb"`
	StorageTB         float64  `json:"storageTb"`
	CPUOvercommit     *float64 `json:"cpuOvercommit,omitempty"`
	MemoryOvercommit  *float64 `json:"memoryOvercommit,omitempty"`
	StorageOvercommit *float64 `json:"storageOvercommit,omitempty"`
}

// ResourceMetrics is the per-resource capacity snapshot. Available may be
// negative when demand exceeds effective capacity.
type ResourceMetrics struct {
	Total           float64 `json:"total"`
	Effective       float64 `json:"effective"`
	Allocated       float64 `json:"allocated"`
	Available       float64 `json:"available"`
	Utilization     float64 `json:"utilization"`
	OvercommitRatio float64 `json:"overcommitRatio"`
}

// CapacityMetrics combines the three resource snapshots with the weighted
// overall utilization.
type CapacityMetrics struct {
	CPU                ResourceMetrics `json:"cpu"`
	Memory             ResourceMetrics `json:"memory"`
	Storage            ResourceMetrics `json:"storage"`
	OverallUtilization float64         `json:"overallUtilization"`
}

// ResourceDemand is the aggregated workload demand across selected VMs.
type ResourceDemand struct {
	CPUGhz    float64 `json:"cpuGhz"`
	MemoryGB  float64 `json:"memoryGb"`
	StorageTB float64 `json:"storageTb"`
}

// CalculateTotalCapacity reduces destination clusters into total and
// overcommit-adjusted capacity per resource. Allocation fields are zero;
// AnalyzeCapacity fills them in once demand is known. An empty cluster list
// yields all-zero metrics.
func CalculateTotalCapacity(clusters []ClusterCapacity) CapacityMetrics {
	var cpuTotal, cpuEffective float64
	var memTotal, memEffective float64
	var storTotal, storEffective float64

	for _, c := range clusters {
		cpu := c.CPUGhz * float64(c.TotalCores)
		cpuTotal += cpu
		cpuEffective += cpu * ratioOrDefault(c.CPUOvercommit)

		memTotal += c.MemoryGB
		memEffective += c.MemoryGB * ratioOrDefault(c.MemoryOvercommit)

		storTotal += c.StorageTB
		storEffective += c.StorageTB * ratioOrDefault(c.StorageOvercommit)
	}

	return CapacityMetrics{
		CPU:     newResourceMetrics(cpuTotal, cpuEffective),
		Memory:  newResourceMetrics(memTotal, memEffective),
		Storage: newResourceMetrics(storTotal, storEffective),
	}
}

// CalculateTotalDemand sums VM requirements into common units: GHz for CPU,
// GB for memory, TB for storage. No rounding until presentation.
func CalculateTotalDemand(vms []VMResourceRequirement) ResourceDemand {
	var demand ResourceDemand
	for _, vm := range vms {
		clock := DefaultVMClockGhz
		if vm.CPUGhz != nil {
			clock = *vm.CPUGhz
		}
		demand.CPUGhz += float64(vm.CPUs) * clock
		demand.MemoryGB += vm.MemoryMB / 1024
		demand.StorageTB += vm.ProvisionedMB / 1024 / 1024
	}
	return demand
}

// newResourceMetrics builds an unallocated snapshot. The realized overcommit
// ratio divides by 1 instead of a zero total.
func newResourceMetrics(total, effective float64) ResourceMetrics {
	divisor := total
	if divisor == 0 {
		divisor = 1
	}
	return ResourceMetrics{
		Total:           total,
		Effective:       effective,
		Available:       effective,
		OvercommitRatio: effective / divisor,
	}
}

func ratioOrDefault(ratio *float64) float64 {
	if ratio == nil {
		return defaultOvercommit
	}
	return *ratio
}
