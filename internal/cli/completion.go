package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for printgraph. Completions cover
commands, flags, and sample names.

To load completions:

Bash:
  $ source <(printgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ printgraph completion bash > /etc/bash_completion.d/printgraph
  # macOS:
  $ printgraph completion bash > $(brew --prefix)/etc/bash_completion.d/printgraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ printgraph completion zsh > "${fpath[1]}/_printgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ printgraph completion fish | source

  # To load completions for each session, execute once:
  $ printgraph completion fish > ~/.config/fish/completions/printgraph.fish

PowerShell:
  PS> printgraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> printgraph completion powershell > printgraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
