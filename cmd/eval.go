package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an arithmetic expression",
	Example: `  mathdrill eval "2*(3+4)-1"
  mathdrill eval 3/4 + 1/8`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		val, err := expr.Evaluate(text)
		if err != nil {
			return errors.Wrapf(err, "evaluate %q", text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(val, 'f', -1, 64))
		return nil
	},
}
