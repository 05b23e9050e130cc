// ABOUTME: Tests for HLD generation readiness validation
// ABOUTME: Validates blocker ordering, the 50% selection boundary, and warning accumulation

package models

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

// completeInput returns a planning snapshot with nothing to complain about.
func completeInput() HLDValidationInput {
	return HLDValidationInput{
		SelectedRVToolsID: strPtr("upload-42"),
		TotalVMCount:      100,
		FilteredVMCount:   80,
		Clusters: []HLDClusterConfig{
			{Name: "target-a", Nodes: []HLDNodeConfig{{Name: "node-1", CPUCores: 32, MemoryGB: 512}}},
		},
		CapacityAnalysis: &CapacityCheck{IsSufficient: true},
		NetworkMappings: []NetworkMapping{
			{SourceVLAN: "vlan-100", DestinationVLAN: "vlan-200"},
		},
	}
}

func TestValidateHLDReadiness_CompleteInput(t *testing.T) {
	result := ValidateHLDReadiness(completeInput())

	if !result.CanGenerate {
		t.Errorf("Expected CanGenerate true, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
}

func TestValidateHLDReadiness_BlockersInOrder(t *testing.T) {
	result := ValidateHLDReadiness(HLDValidationInput{
		SelectedRVToolsID: nil,
		Clusters:          nil,
	})

	if result.CanGenerate {
		t.Error("Expected CanGenerate false with blockers present")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Expected exactly 2 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "RVTools") {
		t.Errorf("Expected first error to mention RVTools, got %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "clusters") {
		t.Errorf("Expected second error to mention clusters, got %q", result.Errors[1])
	}
}

func TestValidateHLDReadiness_WarningsNeverBlock(t *testing.T) {
	input := completeInput()
	input.FilteredVMCount = 0
	input.CapacityAnalysis = nil
	input.NetworkMappings = nil

	result := ValidateHLDReadiness(input)

	if !result.CanGenerate {
		t.Errorf("Warnings must not block generation, got errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected advisory warnings to accumulate")
	}
}

func TestValidateHLDReadiness_VMSelectionBoundary(t *testing.T) {
	tests := []struct {
		name            string
		total, filtered int
		expectWarning   bool
		substring       string
	}{
		{"zero selected", 100, 0, true, "No VMs selected for migration"},
		{"under half selected", 100, 40, true, "Only 40 of 100 VMs selected"},
		{"one below half", 100, 49, true, "Only 49 of 100 VMs selected"},
		{"exactly half does not warn", 100, 50, false, ""},
		{"over half does not warn", 100, 80, false, ""},
		{"odd total, just under half", 101, 50, true, "Only 50 of 101 VMs selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := completeInput()
			input.TotalVMCount = tt.total
			input.FilteredVMCount = tt.filtered

			result := ValidateHLDReadiness(input)

			if !tt.expectWarning {
				if len(result.Warnings) != 0 {
					t.Errorf("Expected no warnings, got %v", result.Warnings)
				}
				return
			}
			if len(result.Warnings) != 1 {
				t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
			}
			if !strings.Contains(result.Warnings[0], tt.substring) {
				t.Errorf("Expected warning containing %q, got %q", tt.substring, result.Warnings[0])
			}
		})
	}
}

func TestValidateHLDReadiness_IncompleteClusters(t *testing.T) {
	input := completeInput()
	input.Clusters = []HLDClusterConfig{
		{Name: "ok", Nodes: []HLDNodeConfig{{Name: "n1"}}},
		{Name: "", Nodes: []HLDNodeConfig{{Name: "n1"}}}, // empty name
		{Name: "no-nodes", Nodes: nil},                   // zero nodes
	}

	result := ValidateHLDReadiness(input)

	if !result.CanGenerate {
		t.Errorf("Incomplete clusters are advisory, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0] != "2 cluster(s) have incomplete configurations." {
		t.Errorf("Expected '2 cluster(s) have incomplete configurations.', got %q", result.Warnings[0])
	}
}

func TestValidateHLDReadiness_CapacityAnalysis(t *testing.T) {
	t.Run("absent analysis warns", func(t *testing.T) {
		input := completeInput()
		input.CapacityAnalysis = nil

		result := ValidateHLDReadiness(input)

		if len(result.Warnings) != 1 || result.Warnings[0] != "Capacity analysis not performed." {
			t.Errorf("Expected 'Capacity analysis not performed.', got %v", result.Warnings)
		}
	})

	t.Run("insufficient analysis warns", func(t *testing.T) {
		input := completeInput()
		input.CapacityAnalysis = &CapacityCheck{IsSufficient: false}

		result := ValidateHLDReadiness(input)

		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "capacity may be insufficient") {
			t.Errorf("Expected insufficiency warning, got %v", result.Warnings)
		}
	})

	t.Run("sufficient analysis is silent", func(t *testing.T) {
		result := ValidateHLDReadiness(completeInput())

		if len(result.Warnings) != 0 {
			t.Errorf("Expected no warnings, got %v", result.Warnings)
		}
	})
}

func TestValidateHLDReadiness_NetworkMappings(t *testing.T) {
	t.Run("no mappings", func(t *testing.T) {
		input := completeInput()
		input.NetworkMappings = nil

		result := ValidateHLDReadiness(input)

		if len(result.Warnings) != 1 || result.Warnings[0] != "No network mappings configured." {
			t.Errorf("Expected 'No network mappings configured.', got %v", result.Warnings)
		}
	})

	t.Run("incomplete mappings counted", func(t *testing.T) {
		input := completeInput()
		input.NetworkMappings = []NetworkMapping{
			{SourceVLAN: "vlan-100", DestinationVLAN: "vlan-200"},
			{SourceVLAN: "", DestinationVLAN: "vlan-201"},
			{SourceVLAN: "vlan-102", DestinationVLAN: ""},
		}

		result := ValidateHLDReadiness(input)

		if len(result.Warnings) != 1 || result.Warnings[0] != "2 network mapping(s) are incomplete." {
			t.Errorf("Expected '2 network mapping(s) are incomplete.', got %v", result.Warnings)
		}
	})
}

func TestValidateHLDReadiness_WarningAccumulationOrder(t *testing.T) {
	input := HLDValidationInput{
		SelectedRVToolsID: strPtr("upload-1"),
		TotalVMCount:      100,
		FilteredVMCount:   10,
		Clusters:          []HLDClusterConfig{{Name: "", Nodes: nil}},
		CapacityAnalysis:  nil,
		NetworkMappings:   nil,
	}

	result := ValidateHLDReadiness(input)

	if !result.CanGenerate {
		t.Errorf("Expected CanGenerate true, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 4 {
		t.Fatalf("Expected 4 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
	expectedOrder := []string{
		"Only 10 of 100 VMs selected",
		"incomplete configurations",
		"Capacity analysis not performed",
		"No network mappings configured",
	}
	for i, substring := range expectedOrder {
		if !strings.Contains(result.Warnings[i], substring) {
			t.Errorf("Warning %d: expected substring %q, got %q", i, substring, result.Warnings[i])
		}
	}
}
