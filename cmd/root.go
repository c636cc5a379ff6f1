package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uniphil/gittime/cmd/estimate"
	"github.com/uniphil/gittime/internal/cli"
)

type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

func NewRootCmd(versionInfo VersionInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gittime",
		Short:   "Estimate programming time from git history",
		Long:    "Gittime walks a range of commits and prompts for a per-commit time estimate, suggesting defaults derived from commit metadata",
		Version: formatVersion(versionInfo),
	}

	rootCmd.SetVersionTemplate("{{.Version}}")
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		if c.HasParent() {
			fmt.Fprint(c.OutOrStderr(), cli.FormatCommandUsage(c))
		} else {
			fmt.Fprintln(c.OutOrStderr(), cli.FormatRootUsage(c))
		}
		return nil
	})

	rootCmd.AddCommand(
		estimate.NewEstimateCmd(),
	)

	rootCmd.Flags().BoolP("version", "v", false, "Print version")

	return rootCmd
}

func formatVersion(versionInfo VersionInfo) string {
	return fmt.Sprintf("Gittime v%s\nBuild Date: %s\nGit Commit: %s",
		versionInfo.Version,
		versionInfo.BuildDate,
		versionInfo.GitCommit)
}
