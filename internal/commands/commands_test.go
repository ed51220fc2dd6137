package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

type fakeCopier struct {
	copied []string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

// setup isolates the config directory and the clipboard, and returns a fresh
// database path.
func setup(t *testing.T) (string, *fakeCopier) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("LANG", "")

	fake := &fakeCopier{}
	prev := copier
	copier = fake
	t.Cleanup(func() { copier = prev })

	return filepath.Join(t.TempDir(), "huepick.db"), fake
}

// run executes the root command with args and resets the flag variables
// first, since cobra keeps them between calls.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	flagDB, flagList, flagEphemeral, flagVerbose = "", "", false, 0
	convertFormat, convertCopy = "", false
	copyFormat = "hex"
	listJSON, clearDrop = false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	setup(t)

	out, _, err := run(t, "convert", "--ephemeral", "#3b82f6")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	for _, want := range []string{
		"HEX   #3B82F6",
		"RGB   rgb(59, 130, 246)",
		"HSL   hsl(217°, 91%, 60%)",
		"ARGB  #FF3B82F6",
		"TEXT  #FFFFFF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertSingleFormat(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		copied []string
	}{
		{"hsl without hash", []string{"convert", "--ephemeral", "f0f", "-f", "hsl"}, "hsl(300°, 100%, 50%)\n", nil},
		{"rgb shorthand", []string{"convert", "--ephemeral", "#fff", "--format", "RGB"}, "rgb(255, 255, 255)\n", nil},
		{"copy argb", []string{"convert", "--ephemeral", "#abc", "-f", "argb", "--copy"}, "#FFAABBCC\n", []string{"#FFAABBCC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fake := setup(t)

			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("output = %q, want prefix %q", out, tt.want)
			}
			if !slices.Equal(fake.copied, tt.copied) {
				t.Errorf("copied %v, want %v", fake.copied, tt.copied)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid color", []string{"convert", "--ephemeral", "#12345"}, "Invalid format"},
		{"unknown format", []string{"convert", "--ephemeral", "#123456", "-f", "cmyk"}, "unknown format"},
		{"missing color", []string{"convert", "--ephemeral"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)

			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	dbPath, fake := setup(t)

	if _, _, err := run(t, "copy", "--db", dbPath, "3b82f6", "-f", "rgb"); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if !slices.Equal(fake.copied, []string{"rgb(59, 130, 246)"}) {
		t.Errorf("copied %v", fake.copied)
	}

	// without an argument the newest saved color is copied
	if _, _, err := run(t, "copy", "--db", dbPath); err == nil {
		t.Error("copy with nothing saved should fail")
	}
	if _, _, err := run(t, "save", "--db", dbPath, "#111111", "#222222"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "copy", "--db", dbPath); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if got := fake.copied[len(fake.copied)-1]; got != "#222222" {
		t.Errorf("copied %q, want the newest saved color", got)
	}
}

func TestCopyFailure(t *testing.T) {
	_, fake := setup(t)
	fake.err = errors.New("no clipboard")

	_, _, err := run(t, "copy", "--ephemeral", "#000")
	if err == nil || !strings.Contains(err.Error(), "Copy failed") {
		t.Errorf("error = %v, want the localized copy failure", err)
	}
}

func TestSaveListRemoveClear(t *testing.T) {
	dbPath, _ := setup(t)

	out, stderr, err := run(t, "save", "--db", dbPath, "#fff", "nope", "#000000", "#fff")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if strings.Count(out, "Saved #fff") != 1 || !strings.Contains(out, "#fff is already saved") {
		t.Errorf("stdout = %q, want the repeat reported as already saved", out)
	}
	if !strings.Contains(stderr, `Ignored invalid color "nope"`) {
		t.Errorf("stderr = %q, want the ignored color reported", stderr)
	}

	out, _, err = run(t, "ls", "--db", dbPath, "--json")
	if err != nil {
		t.Fatalf("ls failed: %v", err)
	}
	var saved []string
	if err := json.Unmarshal([]byte(out), &saved); err != nil {
		t.Fatalf("ls --json output is not JSON: %v\n%s", err, out)
	}
	if !slices.Equal(saved, []string{"#fff", "#000000"}) {
		t.Errorf("saved = %v", saved)
	}

	out, _, _ = run(t, "ls", "--db", dbPath)
	if !strings.Contains(out, "Saved colors (2/20)") || !strings.Contains(out, "rgb(255, 255, 255)") {
		t.Errorf("ls output:\n%s", out)
	}

	_, stderr, err = run(t, "rm", "--db", dbPath, "#FFFFFF", "#fff")
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(stderr, "#FFFFFF is not saved") {
		t.Errorf("stderr = %q, want the exact-match miss reported", stderr)
	}

	out, _, _ = run(t, "ls", "--db", dbPath, "--json")
	if strings.Contains(out, "#fff") {
		t.Errorf("#fff still saved after rm:\n%s", out)
	}

	if _, _, err := run(t, "clear", "--db", dbPath); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	out, _, _ = run(t, "ls", "--db", dbPath)
	if !strings.Contains(out, "No saved colors yet.") {
		t.Errorf("ls after clear:\n%s", out)
	}
	out, _, _ = run(t, "ls", "--db", dbPath, "--json")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("ls --json after clear = %q, want []", out)
	}
}

func TestSaveEvictsOldest(t *testing.T) {
	dbPath, _ := setup(t)

	args := []string{"save", "--db", dbPath}
	for _, d := range "0123456789abcdef" {
		args = append(args, "#"+strings.Repeat(string(d), 6))
	}
	if _, _, err := run(t, args...); err != nil {
		t.Fatal(err)
	}

	more := []string{"save", "--db", dbPath, "#010101", "#020202", "#030303", "#040404", "#050505"}
	out, _, err := run(t, more...)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Dropped the oldest color #000000") {
		t.Errorf("save output = %q, want the eviction reported", out)
	}
	if strings.Contains(out, "oldest color #010101") {
		t.Errorf("save output = %q, a new color was reported as evicted", out)
	}

	out, _, _ = run(t, "ls", "--db", dbPath, "--json")
	var saved []string
	if err := json.Unmarshal([]byte(out), &saved); err != nil {
		t.Fatal(err)
	}
	if len(saved) != 20 {
		t.Fatalf("len(saved) = %d, want 20", len(saved))
	}
	if saved[0] != "#111111" || saved[19] != "#050505" {
		t.Errorf("saved = %v, want #000000 evicted and #050505 last", saved)
	}

	out, _, _ = run(t, "ls", "--db", dbPath)
	if !strings.Contains(out, "Limit reached") {
		t.Errorf("ls at the limit does not warn:\n%s", out)
	}
}

func TestNamedLists(t *testing.T) {
	dbPath, _ := setup(t)

	if _, _, err := run(t, "save", "--db", dbPath, "#111"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "save", "--db", dbPath, "--list", "brand", "#222"); err != nil {
		t.Fatal(err)
	}

	out, _, _ := run(t, "ls", "--db", dbPath, "--list", "brand", "--json")
	if strings.Contains(out, "#111") || !strings.Contains(out, "#222") {
		t.Errorf("brand list = %s", out)
	}

	out, _, err := run(t, "lists", "--db", dbPath, "--list", "brand")
	if err != nil {
		t.Fatal(err)
	}
	if out != "* brand\n  savedColors\n" {
		t.Errorf("lists output = %q", out)
	}
}

func TestClearDropDeletesList(t *testing.T) {
	dbPath, _ := setup(t)

	for _, list := range []string{"brand", "savedColors"} {
		if _, _, err := run(t, "save", "--db", dbPath, "--list", list, "#abc"); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := run(t, "clear", "--db", dbPath, "--list", "brand", "--drop")
	if err != nil {
		t.Fatalf("clear --drop failed: %v", err)
	}
	if !strings.Contains(out, "Deleted list brand") {
		t.Errorf("clear --drop output = %q", out)
	}

	out, _, _ = run(t, "lists", "--db", dbPath)
	if out != "* savedColors\n" {
		t.Errorf("lists output = %q, want brand gone", out)
	}

	// a plain clear keeps the key with an empty list
	if _, _, err := run(t, "clear", "--db", dbPath); err != nil {
		t.Fatal(err)
	}
	out, _, _ = run(t, "lists", "--db", dbPath)
	if out != "* savedColors\n" {
		t.Errorf("lists output after clear = %q", out)
	}
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	setup(t)

	if _, _, err := run(t, "save", "--ephemeral", "#123"); err != nil {
		t.Fatal(err)
	}
	out, _, _ := run(t, "ls", "--ephemeral", "--json")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("ephemeral list survived a second run: %s", out)
	}
}

func TestConfigDefaultList(t *testing.T) {
	dbPath, _ := setup(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "huepick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "list = \"work\"\nlanguage = \"zh\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "save", "--db", dbPath, "#abc")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "已保存 #abc") {
		t.Errorf("output = %q, want the configured language", out)
	}

	out, _, _ = run(t, "lists", "--db", dbPath)
	if out != "* work\n" {
		t.Errorf("lists output = %q, want the configured list", out)
	}
}

func TestHelpAndVersion(t *testing.T) {
	setup(t)

	out, _, err := run(t, "help")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"huepick - terminal color picker", "convert <color>", "--ephemeral"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}

	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })
	out, _, _ = run(t, "version")
	if out != "huepick 1.2.3 (abc, today)\n" {
		t.Errorf("version output = %q", out)
	}
}
