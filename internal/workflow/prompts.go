package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mattsre/gcw/internal/commit"
	"github.com/mattsre/gcw/internal/ui"
)

// answers is everything the prompt sequence produces: the message
// fields plus the commit flags.
type answers struct {
	fields   commit.Message
	amend    bool
	signoff  bool
	noVerify bool
}

// gitFlags returns the optional commit flags in their fixed order.
func (a *answers) gitFlags() []string {
	var flags []string
	if a.amend {
		flags = append(flags, "--amend")
	}
	if a.signoff {
		flags = append(flags, "--signoff")
	}
	if a.noVerify {
		flags = append(flags, "--no-verify")
	}
	return flags
}

// collect walks the fixed question sequence. Conditional questions
// (breaking details, body) are only asked when the gating answer was
// yes. Validation failures re-ask the same question; they never bubble
// up.
func (w *Wizard) collect() (*answers, error) {
	a := &answers{}

	// 1. type
	typeOptions := make([]huh.Option[string], 0, len(commit.Types))
	for _, info := range commit.Types {
		label := fmt.Sprintf("%-9s %s", info.Name+":", info.Desc)
		typeOptions = append(typeOptions, huh.NewOption(label, info.Name))
	}
	a.fields.Type = w.cfg.DefaultType
	if err := runField(huh.NewSelect[string]().
		Title("Type of change").
		Options(typeOptions...).
		Value(&a.fields.Type)); err != nil {
		return nil, err
	}

	// 2. scope
	if err := runField(huh.NewInput().
		Title("Scope (optional)").
		Placeholder("e.g. api, parser").
		Value(&a.fields.Scope)); err != nil {
		return nil, err
	}
	a.fields.Scope = strings.TrimSpace(a.fields.Scope)

	// 3. description
	if err := runField(huh.NewInput().
		Title("Short description").
		Validate(func(value string) error {
			return commit.ValidateDescription(value, w.cfg.Strict)
		}).
		Value(&a.fields.Description)); err != nil {
		return nil, err
	}
	a.fields.Description = strings.TrimSpace(a.fields.Description)
	if !w.cfg.Strict {
		for _, warning := range commit.StyleWarnings(a.fields.Description) {
			ui.Warn(w.err(), "%s", warning)
		}
	}

	// 4. breaking change
	if err := runField(huh.NewConfirm().
		Title("Does this change break existing behavior?").
		Value(&a.fields.Breaking)); err != nil {
		return nil, err
	}

	// 5. breaking details, only when breaking
	if a.fields.Breaking {
		if err := runField(huh.NewInput().
			Title("Describe the breaking change").
			Validate(commit.ValidateRequired("breaking change details")).
			Value(&a.fields.BreakingDetails)); err != nil {
			return nil, err
		}
		a.fields.BreakingDetails = strings.TrimSpace(a.fields.BreakingDetails)
	}

	// 6-7. optional body via external editor
	var wantBody bool
	if err := runField(huh.NewConfirm().
		Title("Add a longer body?").
		Value(&wantBody)); err != nil {
		return nil, err
	}
	if wantBody {
		body, err := w.editBody()
		if err != nil {
			return nil, err
		}
		a.fields.Body = body
	}

	// 8. refs
	var refs string
	if err := runField(huh.NewInput().
		Title("References (optional, comma separated)").
		Placeholder("#123, #456").
		Value(&refs)); err != nil {
		return nil, err
	}
	a.fields.Refs = commit.SplitList(refs)

	// 9. closes
	var closes string
	if err := runField(huh.NewInput().
		Title("Issues closed by this commit (optional, comma separated)").
		Placeholder("789").
		Value(&closes)); err != nil {
		return nil, err
	}
	a.fields.Closes = commit.NormalizeIssues(commit.SplitList(closes))

	// 10-12. commit flags
	if err := runField(huh.NewConfirm().
		Title("Amend the previous commit?").
		Value(&a.amend)); err != nil {
		return nil, err
	}
	a.signoff = w.cfg.Signoff
	if err := runField(huh.NewConfirm().
		Title("Add a Signed-off-by trailer?").
		Value(&a.signoff)); err != nil {
		return nil, err
	}
	if err := runField(huh.NewConfirm().
		Title("Skip pre-commit hooks (--no-verify)?").
		Value(&a.noVerify)); err != nil {
		return nil, err
	}

	return a, nil
}

// confirmCommit is the final question gating the commit itself.
func (w *Wizard) confirmCommit() (bool, error) {
	return w.prompt.Confirm("Create commit?", true)
}

// runField runs a single prompt, translating a Ctrl+C into the clean
// abort sentinel.
func runField(field interface{ Run() error }) error {
	if err := field.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
