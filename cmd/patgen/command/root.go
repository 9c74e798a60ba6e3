package command

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mgm-tp/jfunk-sub000/alphabet"
	"github.com/mgm-tp/jfunk-sub000/catalog"
	"github.com/mgm-tp/jfunk-sub000/pattern"
)

// Flag names. Each one can also be set as PATGEN_<NAME> with dashes turned
// into underscores, or as a key of the --config file.
const (
	flagConfig    = "config"
	flagCatalog   = "catalog"
	flagGlob      = "glob"
	flagField     = "field"
	flagPattern   = "pattern"
	flagEncoding  = "encoding"
	flagGood      = "good"
	flagBad       = "bad"
	flagSeed      = "seed"
	flagWorkers   = "workers"
	flagFormat    = "format"
	flagLZ4       = "lz4"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagCount     = "count"
	flagLength    = "length"
	flagBadness   = "badness"
)

const envPrefix = "PATGEN"

var errNoExpression = errors.New("either --field (with --catalog) or --pattern is required")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

// NewRoot builds the patgen command tree. Every call returns an independent
// tree, so tests can run commands side by side.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "patgen",
		Short: "patgen generates valid and deliberately invalid test values.",
		Long: "`patgen` compiles a generator expression against an alphabet and produces values\n" +
			"that satisfy it or, with --badness, violate it in a controlled way.\n" +
			"Expressions come from --pattern or from a field of a YAML catalog.",
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "Optional config file (yaml, json or toml) providing flag values.")
	pf.String(flagCatalog, "", "Directory holding catalog definition files.")
	pf.String(flagGlob, catalog.DefaultGlob, "Glob selecting definition files below --catalog.")
	pf.String(flagField, "", "Catalog field to use instead of --pattern.")
	pf.String(flagPattern, "", "Generator expression.")
	pf.String(flagEncoding, "US-ASCII", "Single-byte encoding of the alphabet used with --pattern.")
	pf.String(flagGood, `[\x20-\x7e]`, "Expression selecting allowed characters.")
	pf.String(flagBad, `[^\x20-\x7e]`, "Expression selecting forbidden characters.")
	pf.Int64(flagSeed, 1, "Seed of the random source.")
	pf.Int(flagWorkers, 1, "Number of parallel workers.")
	pf.String(flagFormat, "text", "Output format: text, json or msgpack.")
	pf.Bool(flagLZ4, false, "Compress the output as an lz4 stream.")
	pf.String(flagLogLevel, "warn", "Log level: debug, info, warn or error.")
	pf.String(flagLogFormat, "text", "Log format: text, json or tint (colored console).")

	root.AddCommand(
		a.generateCommand(),
		a.negateCommand(),
		a.explainCommand(),
		a.boundariesCommand(),
	)

	return root
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(flagLogFormat), a.v.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// source resolves the expression and alphabet selected by the flags.
func (a *app) source() (string, *alphabet.Alphabet, error) {
	if field := a.v.GetString(flagField); field != "" {
		dir := a.v.GetString(flagCatalog)
		if dir == "" {
			return "", nil, fmt.Errorf("--%s %q needs --%s", flagField, field, flagCatalog)
		}
		defs, err := catalog.LoadFS(os.DirFS(dir), a.v.GetString(flagGlob))
		if err != nil {
			return "", nil, err
		}
		c, err := catalog.Build(defs, catalog.WithLogger(a.logger))
		if err != nil {
			return "", nil, err
		}
		f, err := c.Field(field)
		if err != nil {
			return "", nil, err
		}
		a.logger.Debug("using catalog field",
			slog.String("field", f.Name),
			slog.String("alphabet", f.Alphabet),
			slog.String("pattern", f.Pattern),
		)

		return f.Pattern, f.AlphabetOf(), nil
	}

	expr := a.v.GetString(flagPattern)
	if expr == "" {
		return "", nil, errNoExpression
	}
	alpha, err := alphabet.New(a.v.GetString(flagEncoding), a.v.GetString(flagGood), a.v.GetString(flagBad))
	if err != nil {
		return "", nil, err
	}

	return expr, alpha, nil
}

// compile resolves the source and compiles it with the seed flag.
func (a *app) compile() (*pattern.Pattern, error) {
	expr, alpha, err := a.source()
	if err != nil {
		return nil, err
	}

	return pattern.Compile(expr, alpha, pattern.NewSource(a.v.GetInt64(flagSeed)), pattern.WithLogger(a.logger))
}

func addBadnessFlag(fs *pflag.FlagSet, def int) {
	fs.Int(flagBadness, def, "Forbidden characters per atom: 0 none, n exactly n, -1 random, -2 all.")
}
