package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic practice problems with checked answers",
	Long: `mathdrill generates arithmetic practice problems (integer decompositions,
fraction expressions, linear equations and systems, quadratics with integer
roots) and verifies learner answers against the stored solution.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// v holds flag, environment and config file values for the current run.
var v = viper.New()

// logger is set up by initConfig before any command runs.
var logger = slog.New(slog.DiscardHandler)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (YAML, TOML or JSON)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.Int("max-attempts", 0, "Generation attempts before the fallback problem is used")
	pf.Float64("addition-weight", 0, "Probability of additive over multiplicative basic problems")
	pf.Float64("fraction-forward-weight", 0, "Probability of the forward fraction method")

	bindFlag("log.level", "log-level")
	bindFlag("generation.max_attempts", "max-attempts")
	bindFlag("generation.addition_weight", "addition-weight")
	bindFlag("generation.fraction_forward_weight", "fraction-forward-weight")

	v.SetEnvPrefix("MATHDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// initConfig reads the optional config file and sets up logging.
func initConfig(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	l, err := newLogger(v.GetString("log.level"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig overlays configured values onto problemgen.DefaultConfig.
// Zero counts keep the defaults. Weights and switches apply whenever set.
func loadConfig(vp *viper.Viper) (problemgen.Config, error) {
	cfg := problemgen.DefaultConfig()

	if n := vp.GetInt("generation.max_attempts"); n > 0 {
		cfg.MaxAttempts = n
	}
	if n := vp.GetInt64("generation.min_result"); n > 0 {
		cfg.MinResult = n
	}
	if n := vp.GetInt64("generation.max_factor_denominator"); n > 0 {
		cfg.MaxFactorDenominator = n
	}
	if n := vp.GetInt("round.length"); n > 0 {
		cfg.RoundLength = n
	}
	if vp.IsSet("generation.addition_allowed") {
		cfg.AdditionAllowed = vp.GetBool("generation.addition_allowed")
	}
	if vp.IsSet("generation.multdiv_allowed") {
		cfg.MultDivAllowed = vp.GetBool("generation.multdiv_allowed")
	}
	if vp.IsSet("generation.addition_weight") {
		cfg.AdditionWeight = vp.GetFloat64("generation.addition_weight")
	}
	if vp.IsSet("generation.fraction_forward_weight") {
		cfg.FractionMethodWeight = vp.GetFloat64("generation.fraction_forward_weight")
	}

	for name, w := range map[string]float64{
		"addition_weight":         cfg.AdditionWeight,
		"fraction_forward_weight": cfg.FractionMethodWeight,
	} {
		if w < 0 || w > 1 {
			return cfg, errors.Errorf("generation: %s must be within [0, 1], got %v", name, w)
		}
	}
	return cfg, nil
}

// newService builds the problem service from the loaded configuration.
func newService() (*problemgen.Service, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}
	return problemgen.NewService(cfg, logger), nil
}

// parseKinds parses a list of kind names. "all" selects every kind.
func parseKinds(names []string) ([]problemgen.Kind, error) {
	var kinds []problemgen.Kind
	for _, name := range names {
		if strings.EqualFold(name, "all") || strings.EqualFold(name, "mixed") {
			return problemgen.Kinds, nil
		}
		k, err := problemgen.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
