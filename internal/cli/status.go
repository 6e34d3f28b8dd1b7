package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthops/content-planner/pkg/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Update the status of a plan item",
	Long: `Update the lifecycle status of a tweet, engagement block, or Zora
content item in the current week plan.`,
}

var statusTweetCmd = &cobra.Command{
	Use:   "tweet <id> <status>",
	Short: "Set a tweet's status (draft, approved, scheduled, posted)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		tweet, err := PlanMgr.SetTweetStatus(args[0], models.TweetStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("Tweet %s is now %s\n", tweet.ID, tweet.Status)
		return nil
	},
}

var statusEngagementCmd = &cobra.Command{
	Use:   "engagement <id> <status>",
	Short: "Set an engagement block's status (pending, done)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		block, err := PlanMgr.SetEngagementStatus(args[0], models.EngagementStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("Engagement block %s is now %s\n", block.ID, block.Status)
		return nil
	},
}

var statusZoraForce bool

var statusZoraCmd = &cobra.Command{
	Use:   "zora <id> [status]",
	Short: "Set or advance a Zora item's production step",
	Long: `Set a Zora content item's production step (prompt, reve, media,
metadata, posted), or advance it to the next step when no status is given.

Progression is forward-only; moving an item backward requires --force.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}

		var item *models.ZoraContent
		var err error
		if len(args) == 1 {
			item, err = PlanMgr.AdvanceZora(args[0])
		} else {
			item, err = PlanMgr.SetZoraStatus(args[0], models.ZoraStatus(args[1]), statusZoraForce)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Zora content %s is now %s\n", item.ID, item.Status)
		return nil
	},
}

func init() {
	statusZoraCmd.Flags().BoolVar(&statusZoraForce, "force", false, "Allow moving a Zora item backward in the lifecycle")
	statusCmd.AddCommand(statusTweetCmd)
	statusCmd.AddCommand(statusEngagementCmd)
	statusCmd.AddCommand(statusZoraCmd)
	rootCmd.AddCommand(statusCmd)
}
