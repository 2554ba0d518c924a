package workflow

import (
	"github.com/mattsre/gcw/internal/ui"
)

// ensureStaged runs the mode-appropriate staging phase. An existing
// staged set is always respected and never altered.
func (w *Wizard) ensureStaged() error {
	if w.opts.Pick {
		return w.pickFiles()
	}
	return w.autoStage()
}

// autoStage is the default mode: keep whatever is already staged, and
// otherwise offer to stage everything.
func (w *Wizard) autoStage() error {
	staged, err := w.git.StagedFiles()
	if err != nil {
		return err
	}
	if len(staged) > 0 {
		ui.Hint(w.out(), "%d file(s) already staged.", len(staged))
		return nil
	}

	entries, err := w.git.Status()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoChanges
	}

	ok, err := w.prompt.Confirm("Stage all changes?", true)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	sp := ui.NewSpinner("Staging changes...")
	sp.Start()
	err = w.git.AddAll()
	sp.Stop()
	return err
}

// pickFiles is the --pick mode: a checklist over every porcelain entry,
// staging exactly the selected paths.
func (w *Wizard) pickFiles() error {
	entries, err := w.git.Status()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoChanges
	}

	selected, err := w.prompt.SelectFiles("Select files to stage", entries)
	if err != nil {
		return err
	}

	if len(selected) > 0 {
		sp := ui.NewSpinner("Staging selected files...")
		sp.Start()
		err = w.git.Add(selected...)
		sp.Stop()
		return err
	}

	staged, err := w.git.StagedFiles()
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		ok, err := w.prompt.Confirm("No files selected and nothing staged. Continue anyway?", false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}
	return nil
}
