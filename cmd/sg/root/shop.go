package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend coins in the shop",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shop items",
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
			fmt.Fprintln(out, ui.Heading(ui.IconShop, fmt.Sprintf("Shop — you have %s %d", ui.IconCoin, st.User.Coins)))
			for _, item := range eng.Tables.Shop {
				affordable := ui.Good
				if st.User.Coins < item.Price {
					affordable = ui.Muted
				}
				fmt.Fprintf(out, "  %s  %s %s\n",
					affordable.Render(fmt.Sprintf("%4d%s", item.Price, ui.IconCoin)),
					ui.Key.Render(item.ID),
					ui.Muted.Render("— "+item.Description))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("an item id is required")
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

			res, err := eng.BuyItem(st, args[0])
			if err != nil {
				return err
			}
			unlocked := eng.CheckAchievements(st)
			if err := store.Save(st); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Bought %s! %s\n",
				ui.IconDone, ui.Title.Render(res.Item.Name),
				ui.Muted.Render(fmt.Sprintf("(%d coins left)", res.CoinsLeft)))
			printUnlocked(out, unlocked)
			return nil
		},
	}
}
