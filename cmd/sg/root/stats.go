package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📊", "Lifetime Stats"))
			fmt.Fprintln(out, ui.LabelValue("Commands run", st.Stats.TotalCommands))
			fmt.Fprintln(out, ui.LabelValue("Since last drop", fmt.Sprintf("%d %s", st.Stats.CommandsSinceDrop,
				ui.Muted.Render(fmt.Sprintf("(guaranteed at %d)", eng.Tables.Rules.GuaranteedDropEvery)))))
			fmt.Fprintln(out, ui.LabelValue("Feedings", st.Stats.TotalFeed))
			fmt.Fprintln(out, ui.LabelValue("Gacha pulls", st.Stats.TotalGacha))
			fmt.Fprintln(out, ui.LabelValue("SSR pulls", st.Stats.SSRCount))
			fmt.Fprintln(out, ui.LabelValue("Best login streak", fmt.Sprintf("%d day(s)", st.Stats.MaxLoginStreak)))
			return nil
		},
	}
}
