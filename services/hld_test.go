// ABOUTME: Tests for HLD document generation
// ABOUTME: Verifies readiness gating and rendered markdown sections

package services

import (
	"strings"
	"testing"

	"github.com/openmigrate/capacity-planner/models"
)

func readyPlanning() models.HLDValidationInput {
	rvtools := "upload-1"
	return models.HLDValidationInput{
		SelectedRVToolsID: &rvtools,
		TotalVMCount:      100,
		FilteredVMCount:   80,
		Clusters: []models.HLDClusterConfig{
			{Name: "prod-east", Nodes: []models.HLDNodeConfig{{Name: "node-1", CPUCores: 64, MemoryGB: 512}}},
		},
		CapacityAnalysis: &models.CapacityCheck{IsSufficient: true},
		NetworkMappings: []models.NetworkMapping{
			{SourceVLAN: "vlan-100", DestinationVLAN: "vlan-200"},
		},
	}
}

func TestGenerate_BlockedWhenNotReady(t *testing.T) {
	generator := NewHLDGenerator()

	_, err := generator.Generate(HLDRequest{Planning: models.HLDValidationInput{}})
	if err == nil {
		t.Fatal("Expected generation to be blocked without planning state")
	}
	if !strings.Contains(err.Error(), "cannot generate HLD") {
		t.Errorf("Expected gating error, got %v", err)
	}
	if !strings.Contains(err.Error(), "No RVTools inventory selected") {
		t.Errorf("Expected blocking reason in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "No destination clusters configured") {
		t.Errorf("Expected both blockers in error, got %v", err)
	}
}

func TestGenerate_RendersSections(t *testing.T) {
	generator := NewHLDGenerator()

	analysis := models.AnalyzeCapacity(
		[]models.VMResourceRequirement{
			{ID: "vm-1", Name: "web-01", CPUs: 4, MemoryMB: 16384, ProvisionedMB: 1048576},
		},
		[]models.ClusterCapacity{
			{ID: "c1", Name: "prod-east", CPUGhz: 2.8, TotalCores: 40, MemoryGB: 384, StorageTB: 30},
		},
	)

	doc, err := generator.Generate(HLDRequest{
		ProjectName: "Datacenter Exit",
		Planning:    readyPlanning(),
		Analysis:    &analysis,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{
		"# High-Level Design: Datacenter Exit",
		"## Source Workloads",
		"VMs selected for migration: 80 of 100",
		"## Destination Clusters",
		"| prod-east | 1 |",
		"## Capacity Analysis",
		"| Source VLAN | Destination VLAN |",
		"| vlan-100 | vlan-200 |",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Expected document to contain %q", want)
		}
	}
	if !strings.Contains(doc, "Overall status: **healthy**") {
		t.Errorf("Expected healthy overall status in document:\n%s", doc)
	}
}

func TestGenerate_DefaultTitleAndMissingAnalysis(t *testing.T) {
	generator := NewHLDGenerator()

	planning := readyPlanning()
	planning.CapacityAnalysis = nil

	doc, err := generator.Generate(HLDRequest{Planning: planning})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(doc, "# High-Level Design: Migration Project") {
		t.Error("Expected default project title")
	}
	if !strings.Contains(doc, "*Capacity analysis not performed.*") {
		t.Error("Expected analysis placeholder when no analysis provided")
	}
	if !strings.Contains(doc, "## Review Items") {
		t.Error("Expected review items section for advisory warnings")
	}
	if !strings.Contains(doc, "- Capacity analysis not performed.") {
		t.Error("Expected the missing-analysis warning in review items")
	}
}

func TestGenerate_NoNetworkMappingsPlaceholder(t *testing.T) {
	generator := NewHLDGenerator()

	planning := readyPlanning()
	planning.NetworkMappings = nil

	doc, err := generator.Generate(HLDRequest{Planning: planning})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(doc, "*No network mappings defined yet.*") {
		t.Error("Expected placeholder for missing network mappings")
	}
}
