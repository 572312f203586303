package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

const zshHook = `# Shell-Gotchi hook (zsh) — add to ~/.zshrc
sg_gotchi_preexec() {
  command sg hook --trigger --command "$1" 2>/dev/null
}
autoload -Uz add-zsh-hook
add-zsh-hook preexec sg_gotchi_preexec
`

const bashHook = `# Shell-Gotchi hook (bash) — add to ~/.bashrc
sg_gotchi_prompt() {
  local last
  last=$(HISTTIMEFORMAT= history 1 | sed 's/^ *[0-9]* *//')
  command sg hook --trigger --command "$last" 2>/dev/null
}
PROMPT_COMMAND="sg_gotchi_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init [bash|zsh]",
		Short:     "Print the shell hook snippet",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "zsh"
			if len(args) == 1 {
				shell = args[0]
			}
			switch shell {
			case "zsh":
				fmt.Fprint(cmd.OutOrStdout(), zshHook)
			case "bash":
				fmt.Fprint(cmd.OutOrStdout(), bashHook)
			default:
				return fmt.Errorf("unsupported shell: %s", shell)
			}
			return nil
		},
	}

	return cmd
}
