package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// errIncorrect makes the process exit non-zero on a wrong answer.
var errIncorrect = errors.New("answer is incorrect")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer against a generated problem",
	Long: `Check reads a problem document written by "generate --json" and verifies
an answer. Use --answer for a single line of input, or one --input per
unknown. The command exits non-zero when the answer is wrong.`,
	Example: `  mathdrill check --problem p.json --answer 3/4
  mathdrill check --problem p.json --input x=1 --input y=-2
  mathdrill generate --json | mathdrill check --problem - --answer 12`,
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("problem", "", "Problem JSON file, or - for stdin (required)")
	f.String("answer", "", "Answer as typed by the learner")
	f.StringArray("input", nil, "Named input as name=value (repeatable)")
	_ = checkCmd.MarkFlagRequired("problem")
	checkCmd.MarkFlagsMutuallyExclusive("answer", "input")
	checkCmd.MarkFlagsOneRequired("answer", "input")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("problem")
	answer, _ := cmd.Flags().GetString("answer")
	pairs, _ := cmd.Flags().GetStringArray("input")

	raw, err := readProblem(cmd, path)
	if err != nil {
		return err
	}
	p, err := problemgen.DecodeProblem(raw)
	if err != nil {
		return errors.Wrap(err, "decode problem")
	}

	var correct bool
	if len(pairs) > 0 {
		inputs, err := parsePairs(pairs)
		if err != nil {
			return err
		}
		correct = p.Check(inputs)
	} else {
		correct = problemgen.CheckInput(answer, p)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, p.Text())
	fmt.Fprintln(out, theme.Verdict(correct))
	if !correct {
		fmt.Fprintf(out, "Answer: %s\n", session.ExpectedAnswer(p))
		return errIncorrect
	}
	return nil
}

func readProblem(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		return raw, errors.Wrap(err, "read problem from stdin")
	}
	raw, err := os.ReadFile(path)
	return raw, errors.Wrapf(err, "read problem %s", path)
}

func parsePairs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("invalid input %q: want name=value", pair)
		}
		inputs[strings.TrimSpace(name)] = val
	}
	return inputs, nil
}
