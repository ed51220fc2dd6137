// Package clipboard copies color values for the user.
//
// The system clipboard is used when one is reachable. Otherwise the text is
// written to a file in the huepick data directory so that it is never lost.
package clipboard

import (
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/tajtiattila/basedir"
	"github.com/tliron/commonlog"
)

// DefaultFeedback is how long a "copied" indicator stays visible.
const DefaultFeedback = 1500 * time.Millisecond

// A Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies to the OS clipboard, falling back to a private file.
type System struct{}

// Copy overwrites the clipboard's contents with text.
func (System) Copy(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return errors.WithMessage(copyBuiltin(text), "copy failed")
}

func clipboardFilename() (string, error) {
	dir, err := basedir.Data.EnsureDir("huepick", 0700)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clipboard"), nil
}

func copyBuiltin(text string) error {
	p, err := clipboardFilename()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(p, []byte(text), 0600), "write "+p)
}

// Tracker remembers what was copied last so the UI can show a transient
// confirmation.
type Tracker struct {
	copier Copier
	copied string
	log    commonlog.Logger
}

func NewTracker(c Copier) *Tracker {
	return &Tracker{copier: c, log: commonlog.GetLogger("huepick.clipboard")}
}

// Copy copies text and reports whether it worked. A failure clears the
// confirmation so nothing claims success.
func (t *Tracker) Copy(text string) bool {
	if err := t.copier.Copy(text); err != nil {
		t.log.Errorf("clipboard: %s", err)
		t.copied = ""
		return false
	}
	t.copied = text
	return true
}

// Copied returns the last successfully copied text, or "" once reset.
func (t *Tracker) Copied() string {
	return t.copied
}

// IsCopied reports whether text is the value currently confirmed as copied.
func (t *Tracker) IsCopied(text string) bool {
	return t.copied != "" && t.copied == text
}

// Reset clears the confirmation if text is still the last copied value.
// Resetting a stale value does nothing.
func (t *Tracker) Reset(text string) {
	if t.copied == text {
		t.copied = ""
	}
}
