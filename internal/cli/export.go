package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the current week plan as JSON",
	Long: `Export the current week plan as a versioned JSON document suitable
for re-import on another machine.

With no argument the JSON is written to stdout. A bare filename is
placed in the configured export directory (export_dir); a path is used
as given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}

		data, err := PlanMgr.ExportJSON()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}

		path := resolveExportPath(args[0])
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		fmt.Printf("Plan exported to %s\n", path)
		return nil
	},
}

// resolveExportPath places bare filenames in the configured export
// directory; anything containing a path separator is used as given.
func resolveExportPath(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) || Config == nil || Config.ExportDir == "" {
		return name
	}
	return filepath.Join(Config.ExportDir, name)
}

var importJSONCmd = &cobra.Command{
	Use:   "import-json [file]",
	Short: "Import a previously exported plan JSON document",
	Long: `Import a plan from a JSON document produced by the export command,
replacing the current week plan. Pass "-" (or no argument) to read
from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}

		source := "-"
		if len(args) > 0 {
			source = args[0]
		}
		text, err := readInput(source)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		plan, err := PlanMgr.ImportJSON([]byte(text))
		if err != nil {
			return err
		}

		printImportSummary(plan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importJSONCmd)
}
