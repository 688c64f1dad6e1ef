package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// runRound drives a round on a line-oriented terminal until it is done,
// input closes or the learner quits.
func runRound(ctx context.Context, r *session.Round, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	total := r.Plan().Length

	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Practice round: %d problems", total)))
	fmt.Fprintln(out)

	for i := 1; !r.Done(); i++ {
		p, err := r.Next(ctx)
		if err != nil {
			return errors.Wrap(err, "next problem")
		}

		fmt.Fprintf(out, "── Problem %d/%d ──\n", i, total)
		fmt.Fprintln(out, theme.Card.Render(theme.Problem.Render(p.Text())))
		if names := p.Inputs(); len(names) > 1 {
			fmt.Fprintln(out, theme.Hint.Render("Enter "+strings.Join(names, ", ")+" as x=1 y=2 or in order"))
		} else if names[0] == problemgen.InputRoots {
			fmt.Fprintln(out, theme.Hint.Render("Enter both roots, e.g. 2, -3"))
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "q") {
			break
		}

		res, err := r.Answer(input)
		if err != nil {
			return err
		}
		fmt.Fprint(out, theme.Verdict(res.Correct))
		if !res.Correct {
			fmt.Fprintf(out, " Answer: %s", res.Expected)
		}
		fmt.Fprintf(out, "  %s\n\n", theme.Hint.Render(res.Elapsed.Round(time.Second).String()))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read answer")
	}

	printSummary(out, session.BuildSummary(r))
	return nil
}

func printSummary(out io.Writer, s *session.Summary) {
	fmt.Fprintf(out, "── Summary: %d/%d correct in %s ──\n",
		s.TotalCorrect, s.TotalQuestions, s.Duration.Round(time.Second))
	if s.Marks != "" {
		fmt.Fprintln(out, s.Marks)
	}
	for _, kp := range s.KindResults {
		if kp.TotalAttempts == 0 {
			continue
		}
		label := fmt.Sprintf("%-10s %2d/%-2d", kp.Kind, kp.CorrectCount, kp.TotalAttempts)
		fmt.Fprintln(out, components.NewProgressBar(label, kp.Accuracy, true, 48).View())
	}
}
