package session

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/uniphil/gittime/internal/format"
	"github.com/uniphil/gittime/internal/git"
)

// maxEstimateHours is the largest hour value whose conversion to a Duration
// does not overflow.
const maxEstimateHours = float64(math.MaxInt64) / float64(time.Hour)

// CommitSource is the consume-once commit sequence the session drains,
// returning io.EOF once exhausted. git.Walker satisfies it.
type CommitSource interface {
	Next() (*object.Commit, error)
}

// Session owns the interactive estimation loop state: the running total and
// the previously processed commit. Nothing else writes to either, so the
// whole loop is strictly sequential with operator input as the only
// suspension point.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	total time.Duration
	prev  *object.Commit
}

func New(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// Run drains the commit source, prompting for one estimate per commit, and
// returns the accumulated total once the walk is exhausted.
func (s *Session) Run(src CommitSource) (time.Duration, error) {
	for {
		commit, err := src.Next()
		if err == io.EOF {
			return s.total, nil
		}
		if err != nil {
			return s.total, err
		}
		if err := s.step(commit); err != nil {
			return s.total, err
		}
	}
}

// step fully processes one commit: diff against the previously walked
// commit (the empty tree on the first iteration), print the summary, collect
// an accepted estimate, and fold it into the total.
func (s *Session) step(commit *object.Commit) error {
	var suggestion *time.Duration
	if s.prev != nil {
		elapsed := commit.Committer.When.Sub(s.prev.Committer.When)
		suggestion = &elapsed
	}

	changes, err := git.Changes(commit, s.prev)
	if err != nil {
		return err
	}

	title := strings.SplitN(commit.Message, "\n", 2)[0]
	summary := format.CommitSummary(
		commit.Hash.String(),
		title,
		commit.Committer.When,
		commit.Author.Email,
		changes,
		suggestion,
	)
	fmt.Fprintf(s.out, "%s\n\n", summary)

	estimate, err := s.readEstimate(suggestion)
	if err != nil {
		return err
	}

	s.total += estimate
	running := s.total
	fmt.Fprintf(s.out, "Running total: %s\n\n", format.Duration(&running))
	s.prev = commit
	return nil
}

// readEstimate blocks on operator input until a line is accepted: an empty
// line takes the suggestion when one exists, anything else must parse as a
// non-negative number of hours. Bad input reports a diagnostic and
// re-prompts; it never ends the session.
func (s *Session) readEstimate(suggestion *time.Duration) (time.Duration, error) {
	for {
		fmt.Fprint(s.out, format.Prompt(suggestion))

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read estimate: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}
		raw := strings.TrimSpace(s.in.Text())

		if raw == "" {
			if suggestion != nil {
				return *suggestion, nil
			}
			fmt.Fprintf(s.out, "%s\n", format.InputRequired())
			continue
		}

		// ParseFloat also accepts "nan" and "inf", which would overflow
		// the Duration conversion and corrupt the total.
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours > maxEstimateHours {
			fmt.Fprintf(s.out, "%s\n", format.InputError(raw))
			continue
		}
		if hours < 0 {
			fmt.Fprintf(s.out, "%s\n", format.NegativeInput())
			continue
		}

		return time.Duration(hours * float64(time.Hour)), nil
	}
}
