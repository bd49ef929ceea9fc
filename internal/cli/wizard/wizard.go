package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/type3-dev/type3/internal/ui"
)

// Run executes the wizard and returns the result.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(ctx context.Context, questions []Question) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		b := &binding{}
		form := huh.NewForm(buildQuestionGroup(q, b)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		saveAnswer(q.ID, b.answer(q), result)
	}

	return result, nil
}

// binding receives the value of one field.
type binding struct {
	text string
	flag bool
}

// answer returns the bound value as stored by saveAnswer. An empty text
// answer falls back to the question default.
func (b *binding) answer(q *Question) string {
	if q.Type == QuestionTypeConfirm {
		return strconv.FormatBool(b.flag)
	}
	if v := strings.TrimSpace(b.text); v != "" {
		return v
	}
	return q.Default
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, b *binding) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, b)
	case QuestionTypeInput:
		field = buildInputField(q, b)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, b)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, b *binding) *huh.Select[string] {
	b.text = q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&b.text)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, b *binding) *huh.Input {
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&b.text)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	required, def, extra := q.Required, q.Default, q.Validate
	return inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = def
		}
		if v == "" {
			if required {
				return ErrRequired
			}
			return nil
		}
		if extra != nil {
			return extra(v)
		}
		return nil
	})
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, b *binding) *huh.Confirm {
	b.flag, _ = strconv.ParseBool(q.Default)

	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&b.flag)
}

// saveAnswer stores an answer in the result. Unknown IDs are ignored.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case IDProjectName:
		result.ProjectName = value
	case IDLanguage:
		result.Language = value
	case IDPackageManager:
		result.PackageManager = value
	case IDDatabase:
		result.Database = value
	case IDAuth:
		b := value == "true"
		result.Auth = &b
	case IDLog:
		b := value == "true"
		result.Log = &b
	}
}

// newWizardTheme creates a huh.Theme from the shared ui palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	c := ui.AdaptivePalette()

	t.Focused.Base = t.Focused.Base.BorderForeground(c.Border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(c.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(c.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(c.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(c.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(c.Primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(c.Text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(c.Success)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(c.Primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(c.Muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(c.Secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(c.Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(c.Text).
		Background(c.Surface)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
