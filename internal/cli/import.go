package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/truthops/content-planner/pkg/models"
)

var (
	importScheduleFile string
	importVoiceFile    string
	importArtifactFile string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Parse a planning document into the current week plan",
	Long: `Parse a weekly planning document and store it as the current week plan.

By default the input is treated as a single combined paste: the tweet
schedule, voice activation, and artifact sections are detected and split
automatically. Pass "-" (or no argument) to read from stdin.

Alternatively, provide the three documents as separate files with
--schedule, --voice, and --artifact. Any of the three may be omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}

		var plan *models.WeekPlan

		if importScheduleFile != "" || importVoiceFile != "" || importArtifactFile != "" {
			if len(args) > 0 {
				return fmt.Errorf("cannot combine a positional file with --schedule/--voice/--artifact")
			}
			schedule, err := readOptionalFile(importScheduleFile)
			if err != nil {
				return fmt.Errorf("reading --schedule: %w", err)
			}
			voice, err := readOptionalFile(importVoiceFile)
			if err != nil {
				return fmt.Errorf("reading --voice: %w", err)
			}
			artifact, err := readOptionalFile(importArtifactFile)
			if err != nil {
				return fmt.Errorf("reading --artifact: %w", err)
			}
			plan, err = PlanMgr.ImportDocuments(schedule, voice, artifact)
			if err != nil {
				return err
			}
		} else {
			source := "-"
			if len(args) > 0 {
				source = args[0]
			}
			text, err := readInput(source)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			plan, err = PlanMgr.ImportCombined(text)
			if err != nil {
				return err
			}
		}

		printImportSummary(plan)
		return nil
	},
}

func printImportSummary(plan *models.WeekPlan) {
	fmt.Printf("Imported plan %s\n", plan.ID)
	if plan.WeekOf != "" {
		fmt.Printf("  Week of:           %s\n", plan.WeekOf)
	}
	fmt.Printf("  Tweets:            %d\n", len(plan.Parsed.Tweets))
	fmt.Printf("  Engagement blocks: %d\n", len(plan.Parsed.EngagementBlocks))
	fmt.Printf("  Zora content:      %d\n", len(plan.Parsed.ZoraContent))
}

// readInput reads the whole content of path, or of stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readOptionalFile reads path, returning an empty string for an empty path.
func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	importCmd.Flags().StringVar(&importScheduleFile, "schedule", "", "Tweet schedule document file")
	importCmd.Flags().StringVar(&importVoiceFile, "voice", "", "Voice activation document file")
	importCmd.Flags().StringVar(&importArtifactFile, "artifact", "", "Artifact document file")
	rootCmd.AddCommand(importCmd)
}
