package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seildur/gcm/internal/config"
	"github.com/seildur/gcm/internal/git"
	"github.com/seildur/gcm/internal/llm"
	"github.com/seildur/gcm/internal/workflow"
)

var (
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "gcm",
		Short: "gcm - AI Git Commit Messages",
		Long: `gcm inspects pending changes in the current git repository and proposes ` +
			`a commit message generated by Claude for your approval.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print the diff and its length before sending it to the model")
}

func run(ctx context.Context) error {
	// The credential is validated here, before any repository interaction.
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	gitClient := git.NewClient(git.Options{Verbose: verbose})
	generator := llm.NewClient(cfg)

	flow := workflow.New(gitClient, generator, workflow.Options{
		Verbose: verbose,
		Out:     rootCmd.OutOrStdout(),
		Err:     rootCmd.ErrOrStderr(),
	})
	return flow.Run(ctx)
}
