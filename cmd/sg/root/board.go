package root

import (
	"github.com/spf13/cobra"

	"shellgotchi/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, store, err := openGame()
			if err != nil {
				return err
			}
			return tui.RunBoard(eng, store, cmd.OutOrStdout())
		},
	}

	return cmd
}
