// Package workflow drives the commit wizard: repository guard, staging,
// the prompt sequence, the message preview, and the final git commit.
package workflow

import (
	"io"
	"os"

	"github.com/mattsre/gcw/internal/config"
	"github.com/mattsre/gcw/internal/emoji"
	"github.com/mattsre/gcw/internal/git"
	"github.com/mattsre/gcw/internal/ui"
)

// Options controls a single wizard run.
type Options struct {
	// Pick presents a multi-select checklist instead of the stage-all
	// shortcut.
	Pick bool
	// DryRun prints the would-be git command and message without
	// committing.
	DryRun bool
	// OutWriter and ErrWriter default to stdout/stderr.
	OutWriter io.Writer
	ErrWriter io.Writer
	// Prompter defaults to the interactive huh-backed implementation.
	Prompter Prompter
}

// Wizard holds the collaborators for one run. It is not re-entrant;
// create a new one per invocation.
type Wizard struct {
	git    *git.Client
	cfg    *config.Config
	opts   Options
	prompt Prompter
}

func NewWizard(gitClient *git.Client, cfg *config.Config, opts Options) *Wizard {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = huhPrompter{}
	}
	return &Wizard{git: gitClient, cfg: cfg, opts: opts, prompt: opts.Prompter}
}

func (w *Wizard) out() io.Writer { return w.opts.OutWriter }
func (w *Wizard) err() io.Writer { return w.opts.ErrWriter }

// Run walks the whole pipeline: guard, staging, prompts, preview,
// confirmation, commit.
func (w *Wizard) Run() error {
	if !w.git.IsRepository() {
		return ErrNotRepository
	}

	if err := w.ensureStaged(); err != nil {
		return err
	}

	// Final guard: proceeding without anything staged would only waste
	// the user's time answering prompts.
	staged, err := w.git.StagedFiles()
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		return ErrNothingStaged
	}

	answers, err := w.collect()
	if err != nil {
		return err
	}

	message := answers.fields.Compose()
	if w.cfg.Emoji {
		message = emoji.DecorateMessage(message, answers.fields.Type)
	}

	w.showDiffStat()
	ui.PrintPreview(w.out(), "Commit message", message)

	confirmed, err := w.confirmCommit()
	if err != nil {
		return err
	}
	// Dry runs still exercise the executor so the user sees the exact
	// command and message file handling.
	if !confirmed && !w.opts.DryRun {
		return ErrAborted
	}

	return w.execute(message, answers.gitFlags())
}

// showDiffStat previews the staged diffstat. The preview is cosmetic,
// so a failing diff downgrades to a warning instead of ending the run.
func (w *Wizard) showDiffStat() {
	stat, err := w.git.DiffStat()
	if err != nil {
		ui.Warn(w.err(), "could not read staged diffstat: %v", err)
		return
	}
	if stat != "" {
		ui.PrintPreview(w.out(), "Staged changes", stat)
	}
}
