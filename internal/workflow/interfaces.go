// Package workflow runs the status -> diff -> generate -> confirm -> commit
// pipeline.
package workflow

import "context"

// GitClient abstracts git operations for testability.
type GitClient interface {
	HasChanges() (bool, error)
	StagedDiff() (string, error)
	UnstagedDiff() (string, error)
	Commit(message string) error
}

// MessageGenerator abstracts the model round trip for testability.
type MessageGenerator interface {
	GenerateCommitMessage(ctx context.Context, diff string) (string, error)
}

// Prompter asks the user whether to commit with the proposed message.
type Prompter interface {
	Confirm(message string) (bool, error)
}
