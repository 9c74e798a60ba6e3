package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mgm-tp/jfunk-sub000/pattern"
)

// AtomInfo describes one compiled atom for the explain command.
type AtomInfo struct {
	Index      int    `json:"index" msgpack:"index"`
	Expression string `json:"expression" msgpack:"expression"`
	Min        int    `json:"min" msgpack:"min"`
	Max        int    `json:"max" msgpack:"max"`
	Allowed    int    `json:"allowed" msgpack:"allowed"`
	Forbidden  int    `json:"forbidden" msgpack:"forbidden"`
}

// Explanation is the explain payload.
type Explanation struct {
	Expression string     `json:"expression" msgpack:"expression"`
	Resolved   string     `json:"resolved" msgpack:"resolved"`
	Encoding   string     `json:"encoding" msgpack:"encoding"`
	Min        int        `json:"min" msgpack:"min"`
	Max        int        `json:"max" msgpack:"max"`
	Atoms      []AtomInfo `json:"atoms" msgpack:"atoms"`
}

func explain(p *pattern.Pattern) Explanation {
	e := Explanation{
		Expression: p.Expression(),
		Resolved:   p.Resolved(),
		Encoding:   p.Alphabet().Encoding(),
		Min:        p.Range().Min(),
		Max:        p.Range().Max(),
	}
	for i, at := range p.Atoms() {
		e.Atoms = append(e.Atoms, AtomInfo{
			Index:      i,
			Expression: at.Expression(),
			Min:        at.Range().Min(),
			Max:        at.Range().Max(),
			Allowed:    len(at.Pool().AllowedSet()),
			Forbidden:  len(at.Pool().ForbiddenSet()),
		})
	}

	return e
}

func (e Explanation) table(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (%s) length [%d,%d]\n", e.Resolved, e.Encoding, e.Min, e.Max); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "Expression", "Min", "Max", "Allowed", "Forbidden")
	for _, at := range e.Atoms {
		if err := table.Append([]string{
			strconv.Itoa(at.Index),
			at.Expression,
			strconv.Itoa(at.Min),
			strconv.Itoa(at.Max),
			strconv.Itoa(at.Allowed),
			strconv.Itoa(at.Forbidden),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func (a *app) explainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show the compiled atoms, their length ranges and pool sizes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.compile()
			if err != nil {
				return err
			}
			e := explain(p)
			return writeOutput(cmd.OutOrStdout(), a.v.GetString(flagFormat), a.v.GetBool(flagLZ4), e, e.table)
		},
	}
}

func (a *app) boundariesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundaries",
		Short: "Generate one value at each boundary length (min-1, min, max, max+1).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.compile()
			if err != nil {
				return err
			}
			values, err := p.GenerateBoundaries(a.v.GetInt(flagBadness))
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), values, nil)
		},
	}
	addBadnessFlag(cmd.Flags(), pattern.BadnessNone)

	return cmd
}
