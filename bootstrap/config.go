package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"reversi/game"
	"reversi/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type Symbols struct {
	Empty  string `mapstructure:"empty"`
	Black  string `mapstructure:"black"`
	White  string `mapstructure:"white"`
	Border string `mapstructure:"border"`
}

type Config struct {
	Depth      int     `mapstructure:"depth"`
	BlackDepth int     `mapstructure:"black_depth"` // 0 falls back to Depth
	WhiteDepth int     `mapstructure:"white_depth"` // 0 falls back to Depth
	Goroutines int     `mapstructure:"goroutines"`
	MaxTurns   int     `mapstructure:"max_turns"`
	ShowBorder bool    `mapstructure:"show_border"`
	Symbols    Symbols `mapstructure:"symbols"`
	LogLevel   string  `mapstructure:"log_level"`
	Record     string  `mapstructure:"record"`
	Replay     string  `mapstructure:"replay"`
	Metrics    bool    `mapstructure:"metrics"`

	Experiment    string `mapstructure:"experiment"` // "", "depth" or "parallel"
	ExperimentDir string `mapstructure:"experiment_dir"`
}

var experiments = []string{"", "depth", "parallel"}

// flag name -> config key
var flagKeys = map[string]string{
	"depth":       "depth",
	"black-depth": "black_depth",
	"white-depth": "white_depth",
	"goroutines":  "goroutines",
	"max-turns":   "max_turns",
	"show-border": "show_border",
	"log-level":   "log_level",
	"record":      "record",
	"replay":      "replay",
	"metrics":     "metrics",

	"experiment":     "experiment",
	"experiment-dir": "experiment_dir",
}

// NewFlagSet defines the command line flags Setup understands.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.IntP("depth", "d", meta.DefaultDepth, "search depth for both players")
	flags.Int("black-depth", 0, "search depth for Black, overrides --depth")
	flags.Int("white-depth", 0, "search depth for White, overrides --depth")
	flags.IntP("goroutines", "g", meta.GO_ROUTINES, "goroutines for the root moves of each search")
	flags.Int("max-turns", meta.MAX_TURNS, "stop the game after this many moves")
	flags.Bool("show-border", false, "print the border ring in the trace")
	flags.String("log-level", zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error)")
	flags.String("record", "", "write the moves of the game to this file")
	flags.String("replay", "", "verify and print the game recorded in this file instead of playing")
	flags.Bool("metrics", false, "print per-move search metrics as CSV to stderr")
	flags.String("experiment", "", "run an experiment instead of a single game (depth, parallel)")
	flags.String("experiment-dir", "results", "directory for experiment results")
	return flags
}

// Setup reads the configuration. Precedence from high to low: flags set on
// the command line, REVERSI_* environment variables, the config file at
// cfgPath (if not empty), defaults.
func Setup(cfgPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("depth", meta.DefaultDepth)
	v.SetDefault("black_depth", 0)
	v.SetDefault("white_depth", 0)
	v.SetDefault("goroutines", meta.GO_ROUTINES)
	v.SetDefault("max_turns", meta.MAX_TURNS)
	v.SetDefault("show_border", false)
	v.SetDefault("symbols.empty", meta.EMPTY_SYMBOL)
	v.SetDefault("symbols.black", meta.BLACK_SYMBOL)
	v.SetDefault("symbols.white", meta.WHITE_SYMBOL)
	v.SetDefault("symbols.border", meta.BORDER_SYMBOL)
	v.SetDefault("log_level", zerolog.LevelInfoValue)
	v.SetDefault("record", "")
	v.SetDefault("replay", "")
	v.SetDefault("metrics", false)
	v.SetDefault("experiment", "")
	v.SetDefault("experiment_dir", "results")
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	var errs error

	if c.Depth < 1 {
		errs = multierror.Append(errs, fmt.Errorf("depth must be positive, got %d", c.Depth))
	}
	if c.BlackDepth < 0 {
		errs = multierror.Append(errs, fmt.Errorf("black_depth must not be negative, got %d", c.BlackDepth))
	}
	if c.WhiteDepth < 0 {
		errs = multierror.Append(errs, fmt.Errorf("white_depth must not be negative, got %d", c.WhiteDepth))
	}
	if c.Goroutines < 1 {
		errs = multierror.Append(errs, fmt.Errorf("goroutines must be positive, got %d", c.Goroutines))
	}
	if c.MaxTurns < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.Record != "" && c.Replay != "" {
		errs = multierror.Append(errs, errors.New("record and replay cannot be used together"))
	}
	if !slices.Contains(experiments, c.Experiment) {
		errs = multierror.Append(errs, fmt.Errorf("unknown experiment %q", c.Experiment))
	}

	symbols := map[string]string{
		"empty":  c.Symbols.Empty,
		"black":  c.Symbols.Black,
		"white":  c.Symbols.White,
		"border": c.Symbols.Border,
	}
	seen := map[string]string{}
	for _, name := range []string{"empty", "black", "white", "border"} {
		s := symbols[name]
		if utf8.RuneCountInString(s) != 1 {
			errs = multierror.Append(errs, fmt.Errorf("symbols.%s must be a single character, got %q", name, s))
			continue
		}
		if other, ok := seen[s]; ok {
			errs = multierror.Append(errs, fmt.Errorf("symbols.%s repeats the symbol of symbols.%s: %q", name, other, s))
			continue
		}
		seen[s] = name
	}

	return errs
}

// PlayerDepth is the search depth of p.
func (c *Config) PlayerDepth(p game.Player) int {
	d := c.WhiteDepth
	if p == game.Black {
		d = c.BlackDepth
	}
	if d == 0 {
		return c.Depth
	}
	return d
}

// Level is the parsed LogLevel, info if it does not parse.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
