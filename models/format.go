// ABOUTME: Display formatting helpers for capacity values and status
// ABOUTME: Fixed precision and status colors shared by every UI surface

package models

import "fmt"

// Status colors used across the dashboard and CLI output.
const (
	ColorHealthy  = "#10b981"
	ColorModerate = "#f59e0b"
	ColorHigh     = "#f97316"
	ColorCritical = "#ef4444"
)

// FormatCPU renders a CPU quantity in GHz with one decimal.
func FormatCPU(ghz float64) string {
	return fmt.Sprintf("%.1f GHz", ghz)
}

// FormatMemory renders a memory quantity in GB with one decimal.
func FormatMemory(gb float64) string {
	return fmt.Sprintf("%.1f GB", gb)
}

// FormatStorage renders a storage quantity in TB with two decimals.
func FormatStorage(tb float64) string {
	return fmt.Sprintf("%.2f TB", tb)
}

// StatusLabel maps a utilization percentage to its display label using the
// same boundaries as ClassifyStatus.
func StatusLabel(utilization float64) string {
	switch {
	case utilization >= ThresholdHigh:
		return "Critical"
	case utilization >= ThresholdModerate:
		return "High"
	case utilization >= ThresholdHealthy:
		return "Moderate"
	default:
		return "Healthy"
	}
}

// StatusColor maps a utilization percentage to its fixed display color.
func StatusColor(utilization float64) string {
	switch {
	case utilization >= ThresholdHigh:
		return ColorCritical
	case utilization >= ThresholdModerate:
		return ColorHigh
	case utilization >= ThresholdHealthy:
		return ColorModerate
	default:
		return ColorHealthy
	}
}
