// ABOUTME: HLD command for migplan CLI
// ABOUTME: Generates the markdown design document from a request file

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmigrate/capacity-planner/services"
)

var hldOutputPath string

var hldCmd = &cobra.Command{
	Use:   "hld <request.json>",
	Short: "Generate a high-level design document",
	Long: `HLD validates readiness and renders the markdown design document. The
request file carries the project name, planning state, and optionally a
prior capacity analysis to embed.

Exit codes:
  0 - Document generated
  1 - Generation blocked by readiness errors
  2 - Error (unreadable request file)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runHLD(args[0], os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(hldCmd)
	hldCmd.Flags().StringVarP(&hldOutputPath, "output", "o", "", "Write the document to a file instead of stdout")
}

// runHLD generates the document and returns exit code
func runHLD(path string, w io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error: reading request file: %v\n", err)
		return 2
	}

	var req services.HLDRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintf(w, "Error: parsing request file %s: %v\n", path, err)
		return 2
	}

	doc, err := services.NewHLDGenerator().Generate(req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if hldOutputPath != "" {
		if err := os.WriteFile(hldOutputPath, []byte(doc), 0o644); err != nil {
			fmt.Fprintf(w, "Error: writing document: %v\n", err)
			return 2
		}
		fmt.Fprintf(w, "Document written to %s\n", hldOutputPath)
		return 0
	}

	fmt.Fprint(w, doc)
	return 0
}
