package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/tables"
	"shellgotchi/internal/ui"
)

func newSkinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skin",
		Short: "List or change pet skins",
	}
	cmd.AddCommand(newSkinListCmd(), newSkinSetCmd())
	return cmd
}

func newSkinListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owned skins",
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
			fmt.Fprintln(out, ui.Heading(ui.IconPet, "Skins"))
			for _, id := range st.Collection {
				item, ok := eng.Tables.ItemByID(id)
				if !ok || item.Kind != tables.KindSkin {
					continue
				}
				line := fmt.Sprintf("  %s %s", ui.Muted.Render(id), item.Name)
				if id == st.Pet.SkinID {
					line += " " + ui.Good.Render("(equipped)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newSkinSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <skin-id>",
		Short: "Equip an owned skin",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a skin id is required")
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

			res, err := eng.ChangeSkin(st, args[0])
			if err != nil {
				return err
			}
			if err := store.Save(st); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Skin changed: %s → %s\n",
				ui.IconSparkle, ui.Muted.Render(res.OldID), ui.Title.Render(res.NewID))
			return nil
		},
	}
}
