package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			views := eng.AchievementStatus(st)
			unlockedCount := 0
			for _, v := range views {
				if v.Unlocked {
					unlockedCount++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", unlockedCount, len(views))))
			for _, v := range views {
				var mark string
				if v.Unlocked {
					mark = ui.Gold.Render(ui.IconStar + " unlocked")
				} else {
					mark = ui.Muted.Render(fmt.Sprintf("%d/%d", v.Current, v.Achievement.Target))
				}
				fmt.Fprintf(out, "  %s %s  %s\n",
					ui.Key.Render(v.Achievement.Name),
					ui.Muted.Render("— "+v.Achievement.Description),
					mark)
			}
			return nil
		},
	}
}
