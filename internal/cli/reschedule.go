package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/pkg/models"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule",
	Short: "Move a plan item to another day or time",
	Long: `Move a tweet or Zora content item to a different day and, optionally,
a different time. Times are accepted in any form the document parser
understands (e.g. "9:30 AM", "14:05"). For tweets, omitting the time
clears the existing one.`,
}

var rescheduleTweetCmd = &cobra.Command{
	Use:   "tweet <id> <day> [time]",
	Short: "Reschedule a tweet",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		timeExpr := ""
		if len(args) == 3 {
			timeExpr = args[2]
		}
		tweet, err := PlanMgr.RescheduleTweet(args[0], models.DayOfWeek(args[1]), timeExpr)
		if err != nil {
			return err
		}
		t := "no time"
		if tweet.Time != nil {
			t = parser.FormatTimeForDisplay(*tweet.Time)
		}
		fmt.Printf("Tweet %s moved to %s, %s\n", tweet.ID, tweet.Day, t)
		return nil
	},
}

var rescheduleZoraCmd = &cobra.Command{
	Use:   "zora <id> <day> [time]",
	Short: "Reschedule a Zora content item",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		timeExpr := ""
		if len(args) == 3 {
			timeExpr = args[2]
		}
		item, err := PlanMgr.RescheduleZora(args[0], models.DayOfWeek(args[1]), timeExpr)
		if err != nil {
			return err
		}
		t := "no time"
		if item.Time != nil {
			t = parser.FormatTimeForDisplay(*item.Time)
		}
		fmt.Printf("Zora content %s moved to %s, %s\n", item.ID, item.Day, t)
		return nil
	},
}

func init() {
	rescheduleCmd.AddCommand(rescheduleTweetCmd)
	rescheduleCmd.AddCommand(rescheduleZoraCmd)
	rootCmd.AddCommand(rescheduleCmd)
}
