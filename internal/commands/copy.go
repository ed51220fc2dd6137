package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/huepick/internal/color"
)

var copyCmd = &cobra.Command{
	Use:   "copy [color]",
	Short: "Copy a color to the clipboard",
	Long: `Copy a color to the clipboard in one format. Without a color the
most recently saved one is copied.

Examples:
  huepick copy "#3b82f6"
  huepick copy 3b82f6 --format rgb`,
	Args: cobra.MaximumNArgs(1),
}

var copyFormat string

func runCopy(cmd *cobra.Command, args []string, s *session) error {
	var input string
	if len(args) == 1 {
		input = withHash(args[0])
	} else {
		saved := s.manager.Saved()
		if len(saved) == 0 {
			return fmt.Errorf("%s", s.t("colorList.empty"))
		}
		input = saved[len(saved)-1]
	}
	if !color.IsValid(input) {
		return errInvalidColor(s, input)
	}

	f, ok := color.FormatByName(input, copyFormat)
	if !ok {
		return fmt.Errorf("unknown format %q (want one of %s)", copyFormat, strings.Join(color.FormatNames, ", "))
	}
	return copyValue(cmd, s, f.Value)
}

func init() {
	copyCmd.RunE = withSession(runCopy)
	copyCmd.Flags().StringVarP(&copyFormat, "format", "f", "hex", "Format to copy: hex|rgb|hsl|argb")
}
