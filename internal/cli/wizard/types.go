// Package wizard provides the interactive huh-based wizard for
// collecting a project configuration.
package wizard

import (
	"errors"

	"github.com/type3-dev/type3/internal/config"
)

// WizardResult holds the user's selections from the init wizard.
// Unanswered fields stay unset so the result can be layered with
// config.Merge.
type WizardResult struct {
	ProjectName    string // Project and directory name
	Language       string // javascript or typescript
	PackageManager string // npm, yarn or pnpm
	Database       string // mongodb, mysql, postgresql or none
	Auth           *bool  // Generate authentication
	Log            *bool  // Generate logging
}

// Options converts the result to configuration input.
func (r *WizardResult) Options() config.Options {
	return config.Options{
		Name:           r.ProjectName,
		Language:       r.Language,
		PackageManager: r.PackageManager,
		Database:       r.Database,
		Auth:           r.Auth,
		Log:            r.Log,
	}
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Select, Input or Confirm
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value; "true"/"false" for confirm questions
	Required    bool                     // Whether the field is required
	Validate    func(string) error       // Extra input validation
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrRequired is returned by input validation for an empty required answer.
	ErrRequired = errors.New("this field is required")
)
