package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newCollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Show collected items",
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
			fmt.Fprintln(out, ui.Heading(ui.IconBox, fmt.Sprintf("Collection (%d items)", len(st.Collection))))

			// Walk pools in rarity order so SSRs list first; builtins last.
			owned := make(map[string]bool, len(st.Collection))
			for _, id := range st.Collection {
				owned[id] = true
			}
			for _, rr := range eng.Tables.GachaRates {
				for _, item := range eng.Tables.GachaPools[rr.Rarity] {
					if !owned[item.ID] {
						continue
					}
					printCollectionRow(cmd, string(rr.Rarity), item.Name, item.ID == st.Pet.SkinID)
				}
			}
			for _, item := range eng.Tables.Builtins {
				if owned[item.ID] {
					printCollectionRow(cmd, "R", item.Name, item.ID == st.Pet.SkinID)
				}
			}
			return nil
		},
	}

	return cmd
}

func printCollectionRow(cmd *cobra.Command, rarity, name string, equipped bool) {
	line := fmt.Sprintf("  [%s] %s", ui.RarityText(rarity), name)
	if equipped {
		line += " " + ui.Good.Render("(equipped)")
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
