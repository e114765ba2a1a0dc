// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubox/config"
	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/logger"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), s)

	opts, err := s.Options()
	require.NoError(t, err)
	o, err := encoder.Resolve(opts...)
	require.NoError(t, err)
	require.Equal(t, encoder.DefaultOptions(), o)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeFile(t, "qubox.yaml", "alpha: 12.5\nrepresentation: ISING\nlayout: sym\nworkers: 2\n")
	t.Setenv("QUBOX_WORKERS", "6")

	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 12.5, s.Alpha)
	require.Equal(t, "ISING", s.Representation)
	require.Equal(t, "sym", s.Layout)
	require.Equal(t, 6, s.Workers, "environment wins over the file")

	opts, err := s.Options()
	require.NoError(t, err)
	o, err := encoder.Resolve(opts...)
	require.NoError(t, err)
	require.Equal(t, encoder.Options{Alpha: 12.5, Representation: model.Ising, Layout: matrix.Symmetric, Workers: 6}, o)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "qubox.toml", "alpha = 3.0\nlog_level = \"debug\"\n")
	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3.0, s.Alpha)
	require.Equal(t, "debug", s.LogLevel)

	prev := logger.Logger()
	defer logger.Set(prev)
	require.NoError(t, s.ApplyLogging())
	require.Equal(t, "debug", logger.Logger().GetLevel().String())
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("QUBOX_ALPHA", "-2")
	_, err = config.Load("")
	require.ErrorIs(t, err, encoder.ErrBadAlpha)
}

func TestValidate(t *testing.T) {
	s := config.Defaults()
	s.Representation = "potts"
	require.ErrorIs(t, s.Validate(), model.ErrInvalidRepresentation)
	_, err := s.Options()
	require.ErrorIs(t, err, model.ErrInvalidRepresentation)

	s = config.Defaults()
	s.Layout = "lower"
	require.ErrorIs(t, s.Validate(), matrix.ErrInvalidLayout)

	s = config.Defaults()
	s.Workers = 0
	require.ErrorIs(t, s.Validate(), encoder.ErrBadWorkers)

	s = config.Defaults()
	s.LogLevel = "chatty"
	require.Error(t, s.Validate())
}
