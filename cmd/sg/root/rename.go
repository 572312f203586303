package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename your pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a new name is required")
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

			res, err := eng.RenamePet(st, args[0])
			if err != nil {
				return err
			}
			if err := store.Save(st); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now called %s!\n",
				ui.IconSparkle, ui.Muted.Render(res.OldName), ui.Title.Render(res.NewName))
			return nil
		},
	}

	return cmd
}
