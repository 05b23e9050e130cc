// ABOUTME: RVTools vInfo CSV ingestion for source inventory
// ABOUTME: Maps exported rows to VM resource requirement records

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/openmigrate/capacity-planner/models"
)

// Column headers from the RVTools vInfo tab, as exported to CSV.
const (
	columnVM          = "VM"
	columnVMUUID      = "VM UUID"
	columnCPUs        = "CPUs"
	columnMemory      = "Memory"
	columnProvisioned = "Provisioned MB"
)

// RVToolsImport is the outcome of parsing one vInfo export. Rows that cannot
// be parsed are counted rather than failing the whole upload.
type RVToolsImport struct {
	UploadID    string                         `json:"uploadId"`
	VMs         []models.VMResourceRequirement `json:"vms"`
	SkippedRows int                            `json:"skippedRows"`
}

// ParseRVToolsCSV reads an RVTools vInfo CSV export and returns the VM
// requirement records it contains. The header row is located by column name,
// so extra or reordered columns are tolerated.
func ParseRVToolsCSV(r io.Reader) (RVToolsImport, error) {
	result := RVToolsImport{UploadID: uuid.NewString()}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // RVTools exports vary in trailing columns

	header, err := reader.Read()
	if err == io.EOF {
		return result, fmt.Errorf("empty RVTools export")
	}
	if err != nil {
		return result, fmt.Errorf("reading RVTools header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnVM, columnCPUs, columnMemory, columnProvisioned} {
		if _, ok := columns[required]; !ok {
			return result, fmt.Errorf("RVTools export missing required column %q", required)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("reading RVTools row: %w", err)
		}

		vm, ok := parseVMRow(row, columns)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.VMs = append(result.VMs, vm)
	}

	slog.Info("RVTools export parsed",
		"upload_id", result.UploadID,
		"vms", len(result.VMs),
		"skipped", result.SkippedRows)
	return result, nil
}

// parseVMRow converts one CSV row. Rows with a blank VM name or unparseable
// numerics are rejected.
func parseVMRow(row []string, columns map[string]int) (models.VMResourceRequirement, bool) {
	var vm models.VMResourceRequirement

	name := field(row, columns, columnVM)
	if name == "" {
		return vm, false
	}

	cpus, err := strconv.Atoi(field(row, columns, columnCPUs))
	if err != nil {
		return vm, false
	}
	memoryMB, err := parseNumber(field(row, columns, columnMemory))
	if err != nil {
		return vm, false
	}
	provisionedMB, err := parseNumber(field(row, columns, columnProvisioned))
	if err != nil {
		return vm, false
	}

	vm.Name = name
	vm.ID = field(row, columns, columnVMUUID)
	if vm.ID == "" {
		vm.ID = name
	}
	vm.CPUs = cpus
	vm.MemoryMB = memoryMB
	vm.ProvisionedMB = provisionedMB
	return vm, true
}

func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumber handles RVTools numeric fields, which may carry thousands
// separators depending on export locale.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
