package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsre/gcw/internal/ui"
)

// execute writes the message to a file in a fresh temp directory and
// hands it to git commit. The directory is removed on every exit path.
func (w *Wizard) execute(message string, flags []string) error {
	dir, err := os.MkdirTemp("", "gcw-")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	messageFile := filepath.Join(dir, "COMMIT_EDITMSG")
	if err := os.WriteFile(messageFile, []byte(message), 0o600); err != nil {
		return fmt.Errorf("failed to write commit message: %w", err)
	}

	if w.opts.DryRun {
		ui.Info(w.out(), "Dry run - would execute:")
		ui.Info(w.out(), "  %s", commitCommandLine(messageFile, flags))
		ui.PrintPreview(w.out(), "With message", message)
		return nil
	}

	if err := w.git.Commit(messageFile, flags...); err != nil {
		ui.Error(w.err(), "commit was not created")
		return err
	}

	ui.Success(w.out(), "Commit created.")
	return nil
}

func commitCommandLine(messageFile string, flags []string) string {
	parts := append([]string{"git", "commit", "-F", messageFile}, flags...)
	return strings.Join(parts, " ")
}
