package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reversi/game"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup("", nil)
		require.NoError(t, err)

		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, 3, cfg.PlayerDepth(game.Black))
		require.Equal(t, 3, cfg.PlayerDepth(game.White))
		require.Equal(t, 1, cfg.Goroutines)
		require.Equal(t, 60, cfg.MaxTurns)
		require.False(t, cfg.ShowBorder)
		require.Equal(t, Symbols{Empty: "-", Black: "X", White: "O", Border: "*"}, cfg.Symbols)
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
	})

	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, "reversi.yaml", `
depth: 2
white_depth: 4
show_border: true
symbols:
  empty: "."
  black: "B"
  white: "W"
`)
		cfg, err := Setup(path, nil)
		require.NoError(t, err)

		require.Equal(t, 2, cfg.PlayerDepth(game.Black))
		require.Equal(t, 4, cfg.PlayerDepth(game.White))
		require.True(t, cfg.ShowBorder)
		require.Equal(t, Symbols{Empty: ".", Black: "B", White: "W", Border: "*"}, cfg.Symbols)
	})

	t.Run("flags override file", func(t *testing.T) {
		path := writeConfig(t, "reversi.json", `{"depth": 2, "goroutines": 2}`)
		flags := NewFlagSet("test")
		require.NoError(t, flags.Parse([]string{"--depth", "5", "--black-depth=1"}))

		cfg, err := Setup(path, flags)
		require.NoError(t, err)

		require.Equal(t, 5, cfg.Depth)
		require.Equal(t, 1, cfg.PlayerDepth(game.Black))
		require.Equal(t, 5, cfg.PlayerDepth(game.White))
		require.Equal(t, 2, cfg.Goroutines, "Unset flags keep the file value")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("REVERSI_DEPTH", "4")
		t.Setenv("REVERSI_SYMBOLS_BLACK", "#")

		cfg, err := Setup("", NewFlagSet("test"))
		require.NoError(t, err)
		require.Equal(t, 4, cfg.Depth)
		require.Equal(t, "#", cfg.Symbols.Black)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Depth:      3,
			Goroutines: 1,
			MaxTurns:   60,
			Symbols:    Symbols{Empty: "-", Black: "X", White: "O", Border: "*"},
			LogLevel:   "info",
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		modify func(c *Config)
		errors int
	}{
		{"zero depth", func(c *Config) { c.Depth = 0 }, 1},
		{"negative player depth", func(c *Config) { c.BlackDepth, c.WhiteDepth = -1, -2 }, 2},
		{"no goroutines", func(c *Config) { c.Goroutines = 0 }, 1},
		{"no turns", func(c *Config) { c.MaxTurns = 0 }, 1},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, 1},
		{"record and replay", func(c *Config) { c.Record, c.Replay = "a", "b" }, 1},
		{"unknown experiment", func(c *Config) { c.Experiment = "speedup" }, 1},
		{"long symbol", func(c *Config) { c.Symbols.Black = "XX" }, 1},
		{"empty symbol", func(c *Config) { c.Symbols.Border = "" }, 1},
		{"repeated symbol", func(c *Config) { c.Symbols.White = "X" }, 1},
		{"everything", func(c *Config) {
			c.Depth, c.Goroutines, c.MaxTurns = 0, 0, 0
			c.Symbols.Empty = "X"
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var merr *multierror.Error
			require.True(t, errors.As(err, &merr))
			require.Len(t, merr.Errors, tt.errors)
		})
	}

	t.Run("setup rejects invalid values", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "depth: 0\n")
		_, err := Setup(path, nil)
		require.Error(t, err)
	})
}
