package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/uniphil/gittime/internal/git"
)

const (
	indentUnit = "  "
	bulletMark = "*"
)

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Indent prefixes every line of text with one indentation unit.
func Indent(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = indentUnit + line
	}
	return strings.Join(lines, "\n")
}

// Bullet marks the first line of text with a leading bullet and indents the
// continuation lines to align under it. Every commit block and every
// operator-facing diagnostic goes through this transform.
func Bullet(text string) string {
	lines := splitLines(text)
	if len(lines) == 1 {
		return fmt.Sprintf("%s %s", bulletMark, lines[0])
	}
	rest := Indent(strings.Join(lines[1:], "\n"))
	return fmt.Sprintf("%s %s\n%s", bulletMark, lines[0], rest)
}

// Timestamp renders a commit time as a friendly absolute time.
func Timestamp(t time.Time) string {
	return t.Format("Monday, Jan 02 at 15:04:05")
}

// Duration renders a duration compactly, switching to a coarser unit before
// the value rolls over awkwardly close to the next boundary (58 minutes
// reads better as 1.0h than 58m). A nil duration renders as "undefined".
// The 48s/48m/22h thresholds are part of the output contract.
func Duration(d *time.Duration) string {
	if d == nil {
		return "undefined"
	}
	switch v := *d; {
	case v < 48*time.Second:
		return fmt.Sprintf("%ds", int(v.Seconds()))
	case v < 48*time.Minute:
		return fmt.Sprintf("%.0fm", v.Minutes())
	case v < 22*time.Hour:
		return fmt.Sprintf("%.1fh", v.Hours())
	default:
		return fmt.Sprintf("%dd", int(v.Hours())/24)
	}
}

// CommitSummary renders one commit block: short hash and title, when and by
// whom, aggregate line changes, the per-file breakdown, and the time elapsed
// since the previously walked commit ("undefined" when there is none).
func CommitSummary(hash, title string, when time.Time, author string, changes git.ChangeSet, elapsed *time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", shortHash(hash), title)
	fmt.Fprintf(&b, "%s by %s\n", Timestamp(when), author)
	fmt.Fprintf(&b, "Total line changes: +%d -%d\n", changes.Additions, changes.Deletions)
	if len(changes.Files) > 0 {
		fileLines := make([]string, len(changes.Files))
		for i, fc := range changes.Files {
			fileLines[i] = fmt.Sprintf("+%d -%d %s", fc.Additions, fc.Deletions, fc.Path)
		}
		b.WriteString(Indent(strings.Join(fileLines, "\n")))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Time since previous commit: %s", Duration(elapsed))
	return Bullet(b.String())
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// Prompt builds the operator prompt, embedding the default suggestion when
// one exists.
func Prompt(suggestion *time.Duration) string {
	if suggestion == nil {
		return "Estimate hours spent: "
	}
	return fmt.Sprintf("Estimate hours spent [%s]: ", Duration(suggestion))
}

// InputRequired explains why an empty answer cannot stand in for a default
// on the first commit of the range.
func InputRequired() string {
	return Bullet("Input required: since this is the first commit in the range, all bets are off for how long it took. Make a guess.")
}

// InputError flags operator input that did not parse as a number of hours.
func InputError(raw string) string {
	return Bullet(fmt.Sprintf("Input error: %q doesn't look like a number and I'm just a computer :(", raw))
}

// NegativeInput flags an estimate below zero, which would shrink the total.
func NegativeInput() string {
	return Bullet("Input error: hours spent can't be negative.")
}
