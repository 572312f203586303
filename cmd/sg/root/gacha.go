package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shellgotchi/internal/game"
	"shellgotchi/internal/tables"
	"shellgotchi/internal/ui"
)

func newGachaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gacha",
		Short: "Spend a ticket on a gacha pull",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			if st.User.Tickets <= 0 {
				return game.ErrNoTickets
			}

			res := eng.PullGacha(st)
			unlocked := eng.CheckAchievements(st)
			if err := store.Save(st); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.IconGacha, ui.Muted.Render("The capsule cracks open..."))

			line := fmt.Sprintf("[%s] %s", ui.RarityText(string(res.Rarity)), res.Item.Name)
			if res.IsNew {
				line += " " + ui.BadgeNew
			} else {
				line += " " + ui.Muted.Render("(duplicate)")
			}
			fmt.Fprintln(out, line)
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Tickets left: %d", st.User.Tickets)))

			printUnlocked(out, unlocked)
			return nil
		},
	}

	return cmd
}

func printUnlocked(out io.Writer, unlocked []tables.Achievement) {
	for _, a := range unlocked {
		fmt.Fprintf(out, "%s Achievement unlocked: %s %s\n",
			ui.IconTrophy, ui.Gold.Render(a.Name), ui.Muted.Render("— "+a.Description))
	}
}
