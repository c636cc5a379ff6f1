package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newTestCommands() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "gittime"}
	root.Flags().BoolP("version", "v", false, "Print version")

	sub := &cobra.Command{Use: "estimate <repository> [start] [end]"}
	sub.Flags().StringP("user", "u", "", "Only prompt for commits authored by this email address")
	sub.Flags().Bool("debug", false, "Enable debug output")
	root.AddCommand(sub)

	return root, sub
}

func TestFormatRootUsage(t *testing.T) {
	root, _ := newTestCommands()
	usage := FormatRootUsage(root)

	assert.Contains(t, usage, "usage: gittime")
	assert.Contains(t, usage, "[-v | --version]")
	assert.Contains(t, usage, "<command> [<args>]")
}

func TestFormatCommandUsage(t *testing.T) {
	_, sub := newTestCommands()
	usage := FormatCommandUsage(sub)

	assert.Contains(t, usage, "usage: gittime estimate [<options>] <repository> [start] [end]")
	assert.Contains(t, usage, "-u, --user <user>")
	assert.Contains(t, usage, "--debug")
	assert.Contains(t, usage, "Only prompt for commits authored by this email address")
}
