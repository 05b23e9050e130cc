package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePlanningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planning.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write planning file: %v", err)
	}
	return path
}

const readyPlanningJSON = `{
	"selectedRvtoolsId": "upload-1",
	"totalVmCount": 10,
	"filteredVmCount": 10,
	"clusters": [{"name": "prod", "nodes": [{"name": "n1", "cpuCores": 64, "memoryGb": 512}]}],
	"capacityAnalysis": {"isSufficient": true},
	"networkMappings": [{"sourceVlan": "v100", "destinationVlan": "v200"}]
}`

func TestRunReadiness_Ready(t *testing.T) {
	path := writePlanningFile(t, readyPlanningJSON)

	var buf bytes.Buffer
	code := runReadiness(path, &buf)

	if code != 0 {
		t.Errorf("Expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "READY") {
		t.Errorf("Expected READY summary, got %s", buf.String())
	}
}

func TestRunReadiness_Blocked(t *testing.T) {
	path := writePlanningFile(t, `{"totalVmCount": 0, "filteredVmCount": 0, "clusters": []}`)

	var buf bytes.Buffer
	code := runReadiness(path, &buf)

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "No RVTools inventory selected") {
		t.Errorf("Expected RVTools blocker, got %s", out)
	}
	if !strings.Contains(out, "BLOCKED: 2 error(s)") {
		t.Errorf("Expected blocked summary, got %s", out)
	}
}

func TestRunReadiness_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	code := runReadiness(filepath.Join(t.TempDir(), "missing.json"), &buf)

	if code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}
