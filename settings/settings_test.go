package settings

import (
	"os"
	"path/filepath"
	"testing"

	"royalur/dice"
	"royalur/meta"
	"royalur/rules"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		s, err := Load("")

		require.NoError(t, err)
		require.Equal(t, dice.FourBinary, s.Dice)
		require.Equal(t, meta.ROLLS, s.Rolls)
		require.Equal(t, meta.GO_ROUTINES, s.Goroutines)
		require.Equal(t, meta.OUTPUT_DIR, s.OutputDir)
		require.Zero(t, s.Seed)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, "dice: ThreeBinary0Max\nseed: 9\nrolls: 50\n")

		s, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, dice.ThreeBinary0Max, s.Dice, "Dice should be resolved by display name")
		require.Equal(t, uint64(9), s.Seed)
		require.Equal(t, 50, s.Rolls)
		require.Equal(t, meta.GO_ROUTINES, s.Goroutines, "Unset keys should keep their default")
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeFile(t, "dice: ThreeBinary0Max\nrolls: 50\n")
		t.Setenv("ROYALUR_DICE", "FourBinary")
		t.Setenv("ROYALUR_GOROUTINES", "2")

		s, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, dice.FourBinary, s.Dice)
		require.Equal(t, 2, s.Goroutines)
		require.Equal(t, 50, s.Rolls)
	})

	t.Run("unknown dice name in file", func(t *testing.T) {
		path := writeFile(t, "dice: SixSided\n")

		_, err := Load(path)

		require.ErrorIs(t, err, dice.ErrUnknownDiceType)
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv("ROYALUR_ROLLS", "many")

		_, err := Load("")

		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := writeFile(t, "rolls: 0\n")

		_, err := Load(path)

		require.ErrorIs(t, err, rules.ErrInvalidArgument)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{name: "unknown dice", mutate: func(s *Settings) { s.Dice = dice.DiceType(0) }},
		{name: "no rolls", mutate: func(s *Settings) { s.Rolls = 0 }},
		{name: "no goroutines", mutate: func(s *Settings) { s.Goroutines = -1 }},
		{name: "no output dir", mutate: func(s *Settings) { s.OutputDir = "" }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			require.ErrorIs(t, s.Validate(), rules.ErrInvalidArgument)
		})
	}
}

func TestMarshal(t *testing.T) {
	s := Default()
	s.Dice = dice.ThreeBinary0Max

	data, err := s.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), "dice: ThreeBinary0Max", "Dice should be written by display name")

	path := writeFile(t, string(data))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, s, loaded)
}
