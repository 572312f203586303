package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Daily missions",
	}
	cmd.AddCommand(newDailyListCmd(), newDailyClaimCmd())
	return cmd
}

func newDailyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			// Make sure a stale ledger from yesterday is rolled over
			// before displaying.
			eng.ResetDaily(st)
			if err := store.Save(st); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, "Daily Missions"))
			for _, v := range eng.MissionStatus(st) {
				var mark string
				switch {
				case v.Claimed:
					mark = ui.Muted.Render(ui.IconDone + " claimed")
				case v.Completed:
					mark = ui.Good.Render("ready to claim!")
				default:
					mark = ui.Muted.Render(fmt.Sprintf("%d/%d", v.Progress, v.Mission.Target))
				}
				fmt.Fprintf(out, "  %s %s  %s\n",
					ui.Key.Render(v.Mission.ID),
					ui.Muted.Render("— "+v.Mission.Description),
					mark)
			}
			return nil
		},
	}
}

func newDailyClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <mission-id>",
		Short: "Claim a completed mission's reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a mission id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			eng.ResetDaily(st)
			res, err := eng.ClaimMission(st, args[0])
			if err != nil {
				return err
			}
			if err := store.Save(st); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Claimed %s: %s\n",
				ui.IconDone, ui.Title.Render(res.Mission.Name), rewardText(res.Reward))
			return nil
		},
	}
}
