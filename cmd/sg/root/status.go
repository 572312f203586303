package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your pet and wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			skinName := st.Pet.SkinID
			if item, ok := eng.Tables.ItemByID(st.Pet.SkinID); ok {
				skinName = item.Name
			}

			var b strings.Builder
			b.WriteString(ui.Heading(ui.IconPet, st.Pet.Name) + "  " + ui.Muted.Render("("+skinName+")") + "\n\n")
			b.WriteString(ui.LabelValue("Level", st.Pet.Level) + "\n")

			toNext := eng.ExpToNextLevel(&st.Pet)
			if toNext > 0 {
				next := eng.Tables.LevelThresholds[st.Pet.Level+1]
				cur := eng.Tables.LevelThresholds[st.Pet.Level]
				b.WriteString(ui.LabelValue("EXP", fmt.Sprintf("%d  %s  %s", st.Pet.Exp,
					ui.Bar(float64(st.Pet.Exp-cur), float64(next-cur), 12),
					ui.Muted.Render(fmt.Sprintf("(%d to next)", toNext)))) + "\n")
			} else {
				b.WriteString(ui.LabelValue("EXP", fmt.Sprintf("%d  %s", st.Pet.Exp, ui.Gold.Render("MAX"))) + "\n")
			}
			b.WriteString(ui.LabelValue("Hunger", ui.Bar(st.Pet.Hunger, 100, 12)) + "\n\n")

			b.WriteString(ui.H2.Render("👛 Wallet") + "\n")
			b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %d/%d   %s %d\n",
				ui.IconFood, st.User.Food,
				ui.IconTicket, st.User.Tickets,
				ui.IconFragment, st.User.TicketFragments, eng.Tables.Rules.FragmentsPerTicket,
				ui.IconCoin, st.User.Coins))
			if st.User.ExpBoost > 0 {
				b.WriteString(ui.Gold.Render(fmt.Sprintf("%s EXP boost: %d feeds left", ui.IconSparkle, st.User.ExpBoost)) + "\n")
			}
			b.WriteString("\n" + ui.LabelValue("Login streak", fmt.Sprintf("%d day(s)", st.User.LoginStreak)))

			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(b.String()))
			return nil
		},
	}

	return cmd
}
