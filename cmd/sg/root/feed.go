package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/game"
	"shellgotchi/internal/ui"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			// Engine preconditions are the caller's job.
			if st.User.Food <= 0 {
				return game.ErrNoFood
			}
			if st.Pet.Hunger >= 100 {
				return game.ErrPetFull
			}

			res := eng.FeedPet(st)
			unlocked := eng.CheckAchievements(st)
			if err := store.Save(st); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			line := fmt.Sprintf("%s %s ate happily! +%d EXP", ui.IconFood, st.Pet.Name, res.ExpGained)
			if res.Boosted {
				line += " " + ui.Gold.Render("(boosted)")
			}
			fmt.Fprintln(out, line)
			fmt.Fprintln(out, ui.LabelValue("Hunger", ui.Bar(st.Pet.Hunger, 100, 12)))

			if res.LevelUp {
				fmt.Fprintf(out, "%s %s reached level %d!\n", ui.BadgeLevelUp, st.Pet.Name, res.NewLevel)
			}
			if res.TicketsEarned > 0 {
				fmt.Fprintf(out, "%s Level bonus: +%d ticket(s)\n", ui.IconTicket, res.TicketsEarned)
			}
			printUnlocked(out, unlocked)
			return nil
		},
	}

	return cmd
}
