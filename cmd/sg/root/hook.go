package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shellgotchi/internal/game"
	"shellgotchi/internal/ui"
)

func newHookCmd() *cobra.Command {
	var trigger bool
	var command string

	cmd := &cobra.Command{
		Use:    "hook",
		Short:  "Record a command tick (called by the shell hook)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !trigger {
				fmt.Fprintln(out, ui.Warn.Render("[SG]")+" This command is invoked by the shell hook; see 'sg init'.")
				return nil
			}
			// An empty command line is not a tick.
			if strings.TrimSpace(command) == "" {
				return nil
			}

			eng, store, err := openGame()
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			login := eng.CheckLoginBonus(st)
			if login.IsNewDay {
				if err := store.Save(st); err != nil {
					return err
				}
				switch login.RewardType {
				case game.RewardTicket:
					fmt.Fprintf(out, "%s Day %d streak! +1 %s\n", ui.IconCalendar, login.Streak, ui.IconTicket)
				default:
					fmt.Fprintf(out, "%s Login bonus: +1 fragment %s (streak: %d)\n", ui.IconCalendar, ui.IconFragment, login.Streak)
				}
			}

			res := eng.ProcessCommand(st)
			unlocked := eng.CheckAchievements(st)
			if err := store.Save(st); err != nil {
				return err
			}

			// The hook runs on every prompt; stay quiet unless something
			// happened.
			if res.Dropped {
				fmt.Fprintf(out, "%s Food dropped! (x%d)\n", ui.IconFood, res.FoodCount)
			}
			printUnlocked(out, unlocked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trigger, "trigger", false, "invoked from the shell hook")
	cmd.Flags().StringVar(&command, "command", "", "the command line that was executed")

	return cmd
}
