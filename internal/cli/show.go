package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/pkg/models"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current week plan",
	Long: `Display the current week plan: metadata, scheduled tweets,
engagement blocks, and Zora content, grouped by day.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}

		plan, err := PlanMgr.CurrentPlan()
		if err != nil {
			return err
		}

		if showJSON {
			data, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting plan as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printPlan(plan)
		return nil
	},
}

func printPlan(plan *models.WeekPlan) {
	fmt.Printf("Plan %s\n", plan.ID)
	printMetadata(plan.Parsed.Metadata)

	fmt.Printf("\nTweets (%d)\n", len(plan.Parsed.Tweets))
	for _, tw := range plan.Parsed.Tweets {
		t := "--:--"
		if tw.Time != nil {
			t = parser.FormatTimeForDisplay(*tw.Time)
		}
		fmt.Printf("  %-10s %s %-8s [%s] %s\n", tw.ID, tw.Day, t, tw.Status, firstTextLine(tw.Text))
	}

	fmt.Printf("\nEngagement blocks (%d)\n", len(plan.Parsed.EngagementBlocks))
	for _, eb := range plan.Parsed.EngagementBlocks {
		window := "--:-- - --:--"
		if eb.StartTime != "" {
			window = fmt.Sprintf("%s - %s",
				parser.FormatTimeForDisplay(eb.StartTime),
				parser.FormatTimeForDisplay(eb.EndTime))
		}
		detail := strings.Join(eb.Targets, ", ")
		if eb.IsSkipped {
			detail = "skipped: " + eb.SkipReason
		}
		fmt.Printf("  %-10s %s %-18s [%s] %s\n", eb.ID, eb.Day, window, eb.Status, detail)
	}

	fmt.Printf("\nZora content (%d)\n", len(plan.Parsed.ZoraContent))
	for _, zc := range plan.Parsed.ZoraContent {
		title := ""
		if zc.Title != nil {
			title = *zc.Title
		}
		if zc.Ticker != nil {
			title = fmt.Sprintf("%s ($%s)", title, *zc.Ticker)
		}
		fmt.Printf("  %-10s %s %-6s [%s] %s\n", zc.ID, zc.Day, zc.Type, zc.Status, title)
	}
}

func printMetadata(md models.WeekMetadata) {
	if md.WeekOf != "" {
		fmt.Printf("  Week of:      %s\n", md.WeekOf)
	}
	if md.Theme != nil {
		fmt.Printf("  Theme:        %s\n", *md.Theme)
	}
	if md.CoreTension != nil {
		fmt.Printf("  Core tension: %s\n", *md.CoreTension)
	}
	if md.WeekType != nil {
		fmt.Printf("  Week type:    %s\n", *md.WeekType)
	}
	if md.SystemOutcome != nil {
		fmt.Printf("  Outcome:      %s\n", *md.SystemOutcome)
	}
}

// firstTextLine returns the first non-empty line of text, truncated for
// one-row display.
func firstTextLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 60 {
			return line[:57] + "..."
		}
		return line
	}
	return ""
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the current week plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		if err := PlanMgr.ClearPlan(); err != nil {
			return err
		}
		fmt.Println("Plan cleared.")
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the plan as JSON")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(clearCmd)
}
