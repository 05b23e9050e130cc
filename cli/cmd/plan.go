// ABOUTME: Plan file loading shared by analyze and check commands
// ABOUTME: Reads a JSON migration plan of VMs and destination clusters

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openmigrate/capacity-planner/models"
)

// plan is a migration plan as stored on disk.
type plan struct {
	VMs      []models.VMResourceRequirement `json:"vms"`
	Clusters []models.ClusterCapacity       `json:"clusters"`
}

// loadPlan reads and parses a plan file.
func loadPlan(path string) (plan, error) {
	var p plan

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading plan file: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing plan file %s: %w", path, err)
	}
	return p, nil
}
