package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattsre/gcw/internal/config"
	"github.com/mattsre/gcw/internal/git"
	"github.com/mattsre/gcw/internal/workflow"
)

var (
	cfgFile   string
	pickMode  bool
	dryRun    bool
	verbose   bool
	configErr error
	rootCtx   = context.Background()

	rootCmd = &cobra.Command{
		Use:   "gcw",
		Short: "gcw - Conventional Commit wizard",
		Long: `gcw walks you through staging files and building a well-formed ` +
			`Conventional Commit message, then runs git commit for you.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetContext passes the process signal context down to git invocations.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

// RootCmd exposes the root command for doc generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (RunE -> outWriter -> rootCmd).
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return fmt.Errorf("configuration error: %w", configErr)
		}
		return handleErrors(runWizard())
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is $HOME/.gcw.yaml)")
	rootCmd.Flags().BoolVarP(&pickMode, "pick", "p", false, "Pick the files to stage from a checklist")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the git command and message without committing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show each git command as it runs")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func outWriter() io.Writer { return rootCmd.OutOrStdout() }
func errWriter() io.Writer { return rootCmd.ErrOrStderr() }

func runWizard() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	gitClient := git.NewClient(git.Options{
		Verbose: verbose,
		Context: rootCtx,
	})

	wiz := workflow.NewWizard(gitClient, cfg, workflow.Options{
		Pick:      pickMode,
		DryRun:    dryRun,
		OutWriter: outWriter(),
		ErrWriter: errWriter(),
	})
	return wiz.Run()
}

// handleErrors maps the clean early-exit sentinels to an informational
// message and a zero exit code. Everything else propagates and exits 1.
func handleErrors(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, workflow.ErrNoChanges):
		fmt.Fprintln(outWriter(), "Nothing to commit - working tree clean.")
		return nil
	case errors.Is(err, workflow.ErrNothingStaged):
		fmt.Fprintln(outWriter(), "No files staged for commit.")
		fmt.Fprintln(outWriter(), "Hint: stage changes with git add, or rerun with --pick to choose files.")
		return nil
	case errors.Is(err, workflow.ErrAborted):
		fmt.Fprintln(outWriter(), "Commit cancelled.")
		return nil
	default:
		return err
	}
}
