package root

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all game data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, ui.Warn.Render(ui.IconWarn+" Really reset all data?")+" [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(out, ui.Muted.Render("Aborted."))
					return nil
				}
			}

			_, store, err := openGame()
			if err != nil {
				return err
			}
			if _, err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Data reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
