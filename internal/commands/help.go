package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/huepick/internal/color"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for huepick",
	Long:  `Display detailed help for all huepick commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
				target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

const banner = `
██╗  ██╗██╗   ██╗███████╗██████╗ ██╗ ██████╗██╗  ██╗
██║  ██║██║   ██║██╔════╝██╔══██╗██║██╔════╝██║ ██╔╝
███████║██║   ██║█████╗  ██████╔╝██║██║     █████╔╝
██╔══██║██║   ██║██╔══╝  ██╔═══╝ ██║██║     ██╔═██╗
██║  ██║╚██████╔╝███████╗██║     ██║╚██████╗██║  ██╗
╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝ ╚═════╝╚═╝  ╚═╝`

type helpSection struct {
	title    string
	commands []helpCommand
}

type helpCommand struct {
	name        string
	description string
	examples    []string
	flags       []helpFlag
}

type helpFlag struct {
	name        string
	description string
}

var helpSections = []helpSection{
	{
		title: "COMMANDS",
		commands: []helpCommand{
			{
				name:        "pick [color]",
				description: "Open the interactive picker (also the default with no command)",
				flags: []helpFlag{
					{"--no-animation", "Disable the title shimmer"},
				},
				examples: []string{`huepick pick "#3b82f6"`},
			},
			{
				name:        "convert <color>",
				description: "Print HEX, RGB, HSL, ARGB and the readable text color",
				flags: []helpFlag{
					{"-f, --format", "Print a single format: hex|rgb|hsl|argb"},
					{"--copy", "Copy the result to the clipboard"},
				},
				examples: []string{"huepick convert f0f -f hsl"},
			},
			{
				name:        "copy [color]",
				description: "Copy a color, or the newest saved one",
				flags: []helpFlag{
					{"-f, --format", "Format to copy (default hex)"},
				},
			},
			{name: "save <color>...", description: "Add colors to the saved list (max 20, oldest dropped)"},
			{name: "rm <color>...", description: "Remove colors from the saved list"},
			{
				name:        "clear",
				description: "Remove every saved color",
				flags: []helpFlag{
					{"--drop", "Delete the list from the database"},
				},
			},
			{
				name:        "ls",
				description: "Show the saved colors",
				flags: []helpFlag{
					{"--json", "JSON array output"},
				},
			},
			{name: "lists", description: "Show the saved list names"},
			{name: "version", description: "Print the version"},
			{name: "help", description: "Show this help"},
		},
	},
	{
		title: "GLOBAL FLAGS",
		commands: []helpCommand{
			{name: "--db <path>", description: "SQLite database to use"},
			{name: "--list <name>", description: "Saved list to work on (default savedColors)"},
			{name: "--ephemeral", description: "Keep saved colors in memory only"},
			{name: "-v, --verbose", description: "Increase log verbosity (repeatable)"},
		},
	},
	{
		title: "PICKER KEYS",
		commands: []helpCommand{
			{name: "tab / shift+tab", description: "Move between input, formats and saved colors"},
			{name: "enter", description: "Add the current color, or copy the selection"},
			{name: "c", description: "Copy the selected format or swatch"},
			{name: "ctrl+y", description: "Copy the current color as hex, from any panel"},
			{name: "h/j/k/l", description: "Move inside the formats or the saved grid"},
			{name: "a", description: "Add the current color"},
			{name: "d", description: "Remove the selected swatch"},
			{name: "X", description: "Clear all saved colors"},
			{name: "esc / ctrl+c", description: "Quit"},
		},
	},
}

func showCustomHelp(w io.Writer) {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Blend("#7C3AED", "#3b82f6", 0.5)))
	fmt.Fprintln(w, accent.Render(banner))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "huepick - terminal color picker")

	for _, section := range helpSections {
		fmt.Fprintf(w, "\n%s:\n\n", section.title)
		for _, c := range section.commands {
			fmt.Fprintf(w, "  %-22s %s\n", c.name, c.description)
			for _, f := range c.flags {
				fmt.Fprintf(w, "    %-20s %s\n", f.name, f.description)
			}
			if len(c.examples) > 0 {
				fmt.Fprintf(w, "\n    Example:\n      %s\n\n", strings.Join(c.examples, "\n      "))
			}
		}
	}
	fmt.Fprintln(w)
}
