package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice problems",
	Long: `Generate problems of one kind. With --json each problem is written as one
JSON document per line, including its answer, ready for "mathdrill check".`,
	Example: `  mathdrill generate --kind fraction --level 2 --count 5
  mathdrill generate --kind equation --unknowns 2 --seed 42 --json`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("kind", "basic", "Problem kind: basic, fraction, equation or polynomial")
	f.Int("level", 1, "Difficulty level 1-3")
	f.Int("unknowns", 1, "Number of unknowns for equations (1-3)")
	f.Int64("target", 0, "Result for basic problems (0 draws one)")
	f.Int("count", 1, "Number of problems")
	f.Uint64("seed", 0, "Random seed (0 uses fresh entropy)")
	f.Bool("json", false, "Write JSON documents")
	f.Bool("latex", false, "Print LaTeX instead of plain text")
	f.Bool("answers", false, "Print answers after the problems")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	kindVal, _ := cmd.Flags().GetString("kind")
	level, _ := cmd.Flags().GetInt("level")
	unknowns, _ := cmd.Flags().GetInt("unknowns")
	target, _ := cmd.Flags().GetInt64("target")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")
	asLaTeX, _ := cmd.Flags().GetBool("latex")
	withAnswers, _ := cmd.Flags().GetBool("answers")

	kind, err := problemgen.ParseKind(kindVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return errors.Errorf("count must be positive, got %d", count)
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	req := problemgen.Request{
		Kind:     kind,
		Level:    problemgen.Level(level),
		Unknowns: unknowns,
		Target:   target,
		Seed:     seed,
	}
	problems, err := svc.GenerateBatch(cmd.Context(), req, count)
	if err != nil {
		return errors.Wrap(err, "generate problems")
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		for _, p := range problems {
			if err := enc.Encode(p); err != nil {
				return errors.Wrap(err, "encode problem")
			}
		}
		return nil
	}

	for i, p := range problems {
		text := p.Text()
		if asLaTeX {
			text = p.LaTeX()
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, text)
	}
	if withAnswers {
		fmt.Fprintln(out)
		for i, p := range problems {
			fmt.Fprintf(out, "%d. %s\n", i+1, session.ExpectedAnswer(p))
		}
	}
	return nil
}
