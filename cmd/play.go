package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice round",
	Long: `Serve a round of problems on the terminal and check each answer as it is
typed. Several kinds are cycled in blocks of three. Type "quit" to stop early.`,
	Example: `  mathdrill play --kind fraction --level 2
  mathdrill play --kind basic,equation --unknowns 2 --length 12`,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringSlice("kind", []string{"all"}, "Problem kinds, comma separated, or all")
	f.Int("level", 1, "Difficulty level 1-3")
	f.Int("unknowns", 1, "Largest number of unknowns for equations (1-3)")
	f.Int("length", 0, "Number of problems (0 uses round.length from config)")
	f.Uint64("seed", 0, "Random seed (0 uses fresh entropy)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	kindVals, _ := cmd.Flags().GetStringSlice("kind")
	level, _ := cmd.Flags().GetInt("level")
	unknowns, _ := cmd.Flags().GetInt("unknowns")
	length, _ := cmd.Flags().GetInt("length")
	seed, _ := cmd.Flags().GetUint64("seed")

	kinds, err := parseKinds(kindVals)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	if length <= 0 {
		length = svc.Config().RoundLength
	}

	plan, err := session.BuildPlan(kinds, problemgen.Level(level), unknowns, length)
	if err != nil {
		return err
	}
	plan.Seed = seed

	round, err := session.NewRound(plan, svc, session.WithLogger(logger))
	if err != nil {
		return err
	}
	return runRound(cmd.Context(), round, cmd.InOrStdin(), cmd.OutOrStdout())
}
