package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/huepick/internal/color"
	"github.com/balkashynov/huepick/internal/state"
)

var saveCmd = &cobra.Command{
	Use:     "save <color>...",
	Aliases: []string{"add"},
	Short:   "Add colors to the saved list",
	Long: `Add one or more colors to the saved list. Colors already saved are kept
where they are. Once 20 colors are saved, each new one drops the oldest.

Examples:
  huepick save "#3b82f6" "#f0f"
  huepick save --list brand 1e293b`,
	Args: cobra.MinimumNArgs(1),
}

func runSave(cmd *cobra.Command, args []string, s *session) error {
	for _, arg := range args {
		c := withHash(arg)
		if !color.IsValid(c) {
			cmd.PrintErrf(s.t("cmd.ignored")+"\n", arg)
			continue
		}
		out := cmd.OutOrStdout()
		if s.manager.IsSaved(c) {
			fmt.Fprintf(out, s.t("cmd.alreadySaved")+"\n", c)
			continue
		}

		before := s.manager.Saved()
		s.manager.AddColor(c)
		fmt.Fprintf(out, s.t("cmd.saved")+"\n", c)
		if len(before) == state.MaxSaved && !s.manager.IsSaved(before[0]) {
			fmt.Fprintf(out, s.t("cmd.evicted")+"\n", before[0])
		}
	}
	return nil
}

var rmCmd = &cobra.Command{
	Use:     "rm <color>...",
	Aliases: []string{"remove"},
	Short:   "Remove colors from the saved list",
	Long: `Remove colors from the saved list. The color must be given exactly as it was
saved: #fff and #FFFFFF are different entries.`,
	Args: cobra.MinimumNArgs(1),
}

func runRm(cmd *cobra.Command, args []string, s *session) error {
	for _, arg := range args {
		c := withHash(arg)
		if !s.manager.IsSaved(c) {
			cmd.PrintErrf(s.t("cmd.notSaved")+"\n", c)
			continue
		}
		s.manager.RemoveColor(c)
		fmt.Fprintf(cmd.OutOrStdout(), s.t("cmd.removed")+"\n", c)
	}
	return nil
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved color",
	Long: `Remove every saved color. With --drop the list itself is deleted from the
database, so it no longer shows up in "huepick lists".`,
	Args: cobra.NoArgs,
}

var clearDrop bool

// keyDeleter is implemented by stores that can remove a key outright
type keyDeleter interface {
	Delete(key string) error
}

func runClear(cmd *cobra.Command, args []string, s *session) error {
	if !clearDrop {
		s.manager.ClearColors()
		fmt.Fprintln(cmd.OutOrStdout(), s.t("cmd.cleared"))
		return nil
	}

	kd, ok := s.store.(keyDeleter)
	if !ok {
		return errors.New("this store cannot drop lists")
	}
	if err := kd.Delete(s.list); err != nil {
		return fmt.Errorf("failed to drop list %q: %w", s.list, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), s.t("cmd.dropped")+"\n", s.list)
	return nil
}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Show the saved colors",
	Long: `Show the saved colors, oldest first, with their RGB and HSL values.

Examples:
  huepick ls
  huepick ls --json
  huepick ls --list brand`,
	Args: cobra.NoArgs,
}

var listJSON bool

func runList(cmd *cobra.Command, args []string, s *session) error {
	out := cmd.OutOrStdout()
	saved := s.manager.Saved()

	if listJSON {
		if saved == nil {
			saved = []string{}
		}
		data, err := json.MarshalIndent(saved, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode saved colors: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(saved) == 0 {
		fmt.Fprintln(out, s.t("colorList.empty"))
		return nil
	}

	fmt.Fprintf(out, "%s (%d/%d)\n", s.t("colorList.title"), len(saved), state.MaxSaved)
	for i, c := range saved {
		fmt.Fprintf(out, "%2d %s %-8s %-18s %s\n", i+1, swatch(c, "    "), c, color.RGBString(c), color.HSLString(c))
	}
	if len(saved) == state.MaxSaved {
		fmt.Fprintln(out, s.t("colorList.limit"))
	}
	return nil
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the names of the saved color lists",
	Args:  cobra.NoArgs,
}

// keyLister is implemented by stores that can enumerate their keys
type keyLister interface {
	Keys() ([]string, error)
}

func runLists(cmd *cobra.Command, args []string, s *session) error {
	current := s.list
	names := []string{current}
	if kl, ok := s.store.(keyLister); ok {
		keys, err := kl.Keys()
		if err != nil {
			return fmt.Errorf("failed to list saved lists: %w", err)
		}
		names = keys
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}

func init() {
	saveCmd.RunE = withSession(runSave)
	rmCmd.RunE = withSession(runRm)
	clearCmd.RunE = withSession(runClear)
	listCmd.RunE = withSession(runList)
	listsCmd.RunE = withSession(runLists)

	clearCmd.Flags().BoolVar(&clearDrop, "drop", false, "Delete the list from the database")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the saved colors as a JSON array")
}
