package estimate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uniphil/gittime/internal/config"
	"github.com/uniphil/gittime/internal/format"
	"github.com/uniphil/gittime/internal/git"
	"github.com/uniphil/gittime/internal/logger"
	"github.com/uniphil/gittime/internal/session"
)

func NewEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <repository> [start] [end]",
		Short: "Estimate time spent with prompts of commit metadata",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				return fmt.Errorf("estimate requires a repository and optional start/end revisions\n\nUsage: %s", cmd.UsageString())
			}
			return nil
		},
	}

	// Define estimate command flags
	cmd.Flags().StringP("user", "u", "", "Only prompt for commits authored by this email address")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("debug", false, "Enable debug output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("user") {
			cfg.User, _ = cmd.Flags().GetString("user")
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug, _ = cmd.Flags().GetBool("debug")
		}
		if cmd.Flags().Changed("no-color") {
			cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
		}

		logger.GlobalLogger.SetVerbose(cfg.Verbose)
		logger.GlobalLogger.SetDebug(cfg.Debug)
		if cfg.NoColor {
			logger.GlobalLogger.SetColors(false)
		}

		repo, cleanup, err := git.Acquire(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		opts := git.WalkOptions{Author: cfg.User}
		if len(args) > 1 {
			opts.Start = args[1]
		}
		if len(args) > 2 {
			opts.End = args[2]
		}

		walker, err := git.NewWalker(repo, opts)
		if err != nil {
			return err
		}

		total, err := session.New(os.Stdin, os.Stdout).Run(walker)
		if err != nil {
			return err
		}

		fmt.Printf("\nTotal estimated time: %s\n", format.Duration(&total))
		return nil
	}

	return cmd
}
