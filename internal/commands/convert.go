package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/huepick/internal/color"
)

var convertCmd = &cobra.Command{
	Use:     "convert <color>",
	Aliases: []string{"c"},
	Short:   "Print a color as HEX, RGB, HSL and ARGB",
	Long: `Print a color in every supported format, plus the text color that reads best on it.

Examples:
  huepick convert "#3b82f6"
  huepick convert f0f --format hsl
  huepick convert "#3b82f6" -f rgb --copy`,
	Args: cobra.ExactArgs(1),
}

var (
	convertFormat string
	convertCopy   bool
)

func runConvert(cmd *cobra.Command, args []string, s *session) error {
	input := withHash(args[0])
	if !color.IsValid(input) {
		return errInvalidColor(s, args[0])
	}

	out := cmd.OutOrStdout()

	if convertFormat != "" {
		f, ok := color.FormatByName(input, convertFormat)
		if !ok {
			return fmt.Errorf("unknown format %q (want one of %s)", convertFormat, strings.Join(color.FormatNames, ", "))
		}
		fmt.Fprintln(out, f.Value)
		if convertCopy {
			return copyValue(cmd, s, f.Value)
		}
		return nil
	}

	fmt.Fprintln(out, swatch(input, "      "))
	for _, f := range color.Formats(input) {
		fmt.Fprintf(out, "%-5s %s\n", f.Name, f.Value)
	}
	fmt.Fprintf(out, "%-5s %s\n", "TEXT", color.Contrast(input))

	if convertCopy {
		return copyValue(cmd, s, color.HexString(input))
	}
	return nil
}

// withHash lets users skip the leading # so the shell does not treat it as a
// comment.
func withHash(s string) string {
	if s != "" && !strings.HasPrefix(s, "#") {
		return "#" + s
	}
	return s
}

func errInvalidColor(s *session, input string) error {
	return fmt.Errorf("%s: %q", s.t("colorInput.invalid"), input)
}

// copyValue copies text and reports the result in the session language
func copyValue(cmd *cobra.Command, s *session, text string) error {
	if !s.clip.Copy(text) {
		return errors.New(s.t("clipboard.failed"))
	}
	fmt.Fprintf(cmd.OutOrStdout(), s.t("cmd.copied")+"\n", text)
	return nil
}

// swatch renders label on a block of c with a readable foreground
func swatch(c, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.HexString(c))).
		Foreground(lipgloss.Color(color.Contrast(c))).
		Render(label)
}

func init() {
	convertCmd.RunE = withSession(runConvert)
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Print a single format: hex|rgb|hsl|argb")
	convertCmd.Flags().BoolVar(&convertCopy, "copy", false, "Copy the result to the clipboard")
}
