package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/huepick/internal/color"
	"github.com/balkashynov/huepick/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [color]",
	Short: "Open the interactive color picker",
	Long: `Open the interactive color picker, optionally starting from a color.

Keys:
  tab / shift+tab   Move between the input, the formats and the saved colors
  enter             Add the current color (input) or copy the selection
  c                 Copy the selected format or swatch
  ctrl+y            Copy the current color as hex, from any panel
  a                 Add the current color
  d                 Remove the selected swatch
  X                 Clear all saved colors
  esc / ctrl+c      Quit`,
	Args: cobra.MaximumNArgs(1),
}

func runPick(cmd *cobra.Command, args []string, s *session) error {
	if len(args) == 1 {
		c := withHash(args[0])
		if !color.IsValid(c) {
			cmd.PrintErrln(s.t("colorInput.invalid"))
		}
		s.manager.SetCurrentColor(c)
	}

	noAnim, _ := cmd.Flags().GetBool("no-animation")
	shimmer := tui.DefaultShimmerConfig()
	shimmer.Enabled = !noAnim

	return tui.RunPickerTUI(s.manager, s.clip, tui.Options{
		Language: s.lang,
		Feedback: s.cfg.Feedback(),
		Shimmer:  shimmer,
	})
}

func init() {
	pickCmd.RunE = withSession(runPick)
	for _, c := range []*cobra.Command{rootCmd, pickCmd} {
		c.Flags().Bool("no-animation", false, "Disable the title shimmer")
	}
}
