package workflow

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const bodyTemplate = `
# Write the commit body above. Lines starting with '#' are ignored,
# and an empty buffer means no body.
`

// editBody opens the user's editor on a scratch file and returns the
// saved content with comment lines stripped. An empty result means the
// commit gets no body.
func (w *Wizard) editBody() (string, error) {
	tmpFile, err := os.CreateTemp("", "gcw-body-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName)

	if _, err := tmpFile.WriteString(bodyTemplate); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temporary file: %w", err)
	}
	tmpFile.Close()

	cmd := exec.Command(w.editorCommand(), tmpName)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %w", err)
	}

	edited, err := os.ReadFile(tmpName)
	if err != nil {
		return "", fmt.Errorf("failed to read edited body: %w", err)
	}

	return stripComments(string(edited)), nil
}

func (w *Wizard) editorCommand() string {
	if w.cfg.Editor != "" {
		return w.cfg.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return "vi"
}

// stripComments drops comment lines the way git does: only lines whose
// first column is '#'. Indented '#' lines are body content.
func stripComments(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
