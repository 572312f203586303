package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shellgotchi/internal/ui"
)

const Version = "2.0.0"

var rootCmd = &cobra.Command{
	Use:           "sg",
	Short:         "Shell-Gotchi — raise a pet with your shell commands",
	Long:          "Shell-Gotchi turns your shell activity into food for a terminal pet.\nRun commands to earn food, feed your pet, pull the gacha, and collect skins.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newFeedCmd(),
		newGachaCmd(),
		newCollectionCmd(),
		newHookCmd(),
		newInitCmd(),
		newRenameCmd(),
		newResetCmd(),
		newSkinCmd(),
		newStatsCmd(),
		newShopCmd(),
		newDailyCmd(),
		newAchievementsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
