package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgm-tp/jfunk-sub000/batch"
	"github.com/mgm-tp/jfunk-sub000/pattern"
)

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate values from an expression or catalog field.",
		Example: "patgen generate --pattern '[A-Z]{3}-[0-9]{4}' --count 5\n" +
			"patgen generate --catalog ./defs --field postcode --badness -1 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := a.run(cmd, nil)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), values, nil)
		},
	}
	fs := cmd.Flags()
	fs.Int(flagCount, 1, "Number of values.")
	fs.Int(flagLength, batch.MidpointLength, "Total length of every value, -1 for the midpoint of every atom.")
	addBadnessFlag(fs, pattern.BadnessNone)

	return cmd
}

func (a *app) negateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negate [value...]",
		Short: "Replace characters of valid values with forbidden ones.",
		Long: "Negate reads values from the arguments or, without arguments, one per line\n" +
			"from standard input, and overwrites --badness characters of each.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if len(inputs) == 0 {
				return fmt.Errorf("negate: no input values")
			}
			values, err := a.run(cmd, inputs)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), values, inputs)
		},
	}
	addBadnessFlag(cmd.Flags(), pattern.BadnessRandom)

	return cmd
}

// run executes one batch for generate (inputs nil) or negate.
func (a *app) run(cmd *cobra.Command, inputs []string) ([]string, error) {
	expr, alpha, err := a.source()
	if err != nil {
		return nil, err
	}
	req := batch.Request{
		Expression: expr,
		Alphabet:   alpha,
		Count:      a.v.GetInt(flagCount),
		Length:     a.v.GetInt(flagLength),
		Badness:    a.v.GetInt(flagBadness),
		Negate:     inputs,
		Seed:       a.v.GetInt64(flagSeed),
	}
	if inputs != nil {
		req.Count, req.Length = 0, batch.MidpointLength
	}
	workers := a.v.GetInt(flagWorkers)
	if workers < 1 {
		return nil, fmt.Errorf("invalid --%s %d: must be at least 1", flagWorkers, workers)
	}

	return batch.Generate(cmd.Context(), req, batch.WithWorkers(workers), batch.WithLogger(a.logger))
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return out, nil
}
