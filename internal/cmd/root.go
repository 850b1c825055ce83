package cmd

import (
	"github.com/spf13/cobra"

	"pomo/internal/config"
)

// NewRootCmd creates the root cobra command. Running it with no
// subcommand starts the timer.
func NewRootCmd() *cobra.Command {
	opts := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "pomo [flags]",
		Short: "Terminal work/break interval timer",
		Long: `pomo alternates a work countdown and a break countdown in the terminal,
asking for confirmation before each switch.

Keys:
  p   pause / resume the countdown
  o   confirm and start the next phase
  q   quit

  pomo                  25 minutes of work, 5 minute breaks
  pomo -w 3000 -b 600   50 minutes of work, 10 minute breaks`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return runTimer(cmd.Context(), opts, stdin, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.Uint32VarP(&opts.WorkSec, "work-sec", "w", config.DefaultWorkSec, "Length of a work countdown in seconds")
	flags.Uint32VarP(&opts.BreakSec, "break-sec", "b", config.DefaultBreakSec, "Length of a break countdown in seconds")
	flags.StringVar(&opts.LogFile, "log-file", "", "Append a JSONL activity log of the run to this file")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
