package workflow

import (
	"github.com/charmbracelet/huh"

	"github.com/mattsre/gcw/internal/git"
)

// Prompter abstracts the staging confirmations and the pick-mode
// checklist for testability.
type Prompter interface {
	// Confirm asks a yes/no question with the given default answer.
	Confirm(title string, defaultYes bool) (bool, error)
	// SelectFiles presents a multi-select checklist over status entries
	// and returns the selected paths, unchecked by default.
	SelectFiles(title string, entries []git.StatusEntry) ([]string, error)
}

// huhPrompter is the interactive implementation used outside tests.
type huhPrompter struct{}

func (huhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	answer := defaultYes
	if err := runField(huh.NewConfirm().Title(title).Value(&answer)); err != nil {
		return false, err
	}
	return answer, nil
}

func (huhPrompter) SelectFiles(title string, entries []git.StatusEntry) ([]string, error) {
	options := make([]huh.Option[string], 0, len(entries))
	for _, entry := range entries {
		options = append(options, huh.NewOption(entry.Label, entry.Path))
	}

	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected)
	if err := runField(field); err != nil {
		return nil, err
	}
	return selected, nil
}
