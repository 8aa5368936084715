package workflow

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/seildur/gcm/internal/ui"
)

// Options controls presentation. Out receives the proposed message so it
// can be piped; everything else goes to Err.
type Options struct {
	Verbose bool
	Out     io.Writer
	Err     io.Writer
}

// Flow executes one commit decision, strictly sequentially. Each step's
// output is a precondition for the next.
type Flow struct {
	git      GitClient
	gen      MessageGenerator
	prompter Prompter
	opts     Options
}

func New(git GitClient, gen MessageGenerator, opts Options) *Flow {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	return &Flow{
		git:      git,
		gen:      gen,
		prompter: &InteractivePrompter{In: os.Stdin, Out: opts.Err},
		opts:     opts,
	}
}

func (f *Flow) SetPrompter(p Prompter) {
	f.prompter = p
}

func (f *Flow) Run(ctx context.Context) error {
	hasChanges, err := f.git.HasChanges()
	if err != nil {
		return err
	}
	if !hasChanges {
		fmt.Fprintln(f.opts.Err, ui.Notice("No changes to commit"))
		return nil
	}

	diff, err := f.pendingDiff()
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(f.opts.Err, ui.Notice("No staged changes to commit"))
		return nil
	}

	if f.opts.Verbose {
		fmt.Fprintf(f.opts.Err, "Got diff of length %d\n", len(diff))
		fmt.Fprintf(f.opts.Err, "Sending the following diff to the model:\n%s\n", diff)
	}

	sp := ui.NewProgress("Generating commit message...")
	sp.Start()
	message, err := f.gen.GenerateCommitMessage(ctx, diff)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("failed to generate commit message: %w", err)
	}

	fmt.Fprintf(f.opts.Err, "\n%s\n\n", ui.Header("Suggested commit message:"))
	fmt.Fprintln(f.opts.Out, message)

	confirmed, err := f.prompter.Confirm(message)
	if err != nil {
		return err
	}
	if !confirmed {
		// Declining is not an error.
		return nil
	}

	if err := f.git.Commit(message); err != nil {
		fmt.Fprintln(f.opts.Err, ui.Failure("Failed to create commit"))
		return err
	}
	fmt.Fprintln(f.opts.Err, ui.Success("Commit created successfully!"))
	return nil
}

// pendingDiff prefers staged content; unstaged changes are consulted only
// when nothing is staged. The two are never merged.
func (f *Flow) pendingDiff() (string, error) {
	staged, err := f.git.StagedDiff()
	if err != nil {
		return "", err
	}
	if staged != "" {
		return staged, nil
	}
	return f.git.UnstagedDiff()
}
