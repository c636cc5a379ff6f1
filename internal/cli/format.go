package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FormatRootUsage renders a compact git-style usage line for the root
// command, wrapping flag groups so none is split across lines.
func FormatRootUsage(cmd *cobra.Command) string {
	usage := fmt.Sprintf("usage: %s", cmd.CommandPath())
	padding := strings.Repeat(" ", len(usage)+1)

	var flagGroups []string
	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Shorthand != "" {
			flagGroups = append(flagGroups, fmt.Sprintf("[-%s | --%s]", flag.Shorthand, flag.Name))
		} else {
			flagGroups = append(flagGroups, fmt.Sprintf("[--%s]", flag.Name))
		}
	})
	flagGroups = append(flagGroups, "<command> [<args>]")

	maxWidth := 80
	var lines []string
	currentLine := usage

	for _, group := range flagGroups {
		if len(currentLine)+1+len(group) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = padding + group
		} else {
			currentLine += " " + group
		}
	}
	lines = append(lines, currentLine)

	return strings.Join(lines, "\n")
}

// FormatCommandUsage renders usage for a subcommand: the usage line from the
// command's Use string, then its options aligned in two columns.
func FormatCommandUsage(cmd *cobra.Command) string {
	var builder strings.Builder

	args := ""
	if parts := strings.SplitN(cmd.Use, " ", 2); len(parts) == 2 {
		args = " " + parts[1]
	}
	builder.WriteString(fmt.Sprintf("usage: %s [<options>]%s\n\nOptions:\n", cmd.CommandPath(), args))

	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		line := "    "
		if flag.Shorthand != "" {
			line += fmt.Sprintf("-%s, ", flag.Shorthand)
		}
		line += fmt.Sprintf("--%s", flag.Name)

		// Add value placeholder if not boolean
		if flag.Value.Type() != "bool" {
			line += fmt.Sprintf(" <%s>", flag.Name)
		}

		// Align descriptions at 40 characters
		if len(line) < 40 {
			line += strings.Repeat(" ", 40-len(line))
		} else {
			line += "\n    " + strings.Repeat(" ", 36)
		}

		builder.WriteString(line + flag.Usage + "\n")
	})

	return builder.String()
}
