package main

import (
	"os"

	"github.com/uniphil/gittime/cmd"
	"github.com/uniphil/gittime/internal/logger"
)

var (
	version   = "dev"
	buildDate = "unset"
	gitCommit = "uncommitted"
)

func main() {
	versionInfo := cmd.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	rootCmd := cmd.NewRootCmd(versionInfo)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		logger.GlobalLogger.Errorf("%v", err)
		os.Exit(1)
	}
}
