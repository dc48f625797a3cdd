package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
optimizer: basic_gates
cache_size: 32
ignore_tags: [keep, debug]
log_level: warn
`))
	require.NoError(t, err)
	require.Equal(t, &Config{
		Optimizer:  "basic_gates",
		CacheSize:  32,
		IgnoreTags: []string{"keep", "debug"},
		LogLevel:   "warn",
	}, c)
	require.Equal(t, zerolog.WarnLevel, c.Logger().GetLevel())

	opts, err := c.Options()
	require.NoError(t, err)
	require.Len(t, opts, 4)
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("cache_size: 4\n"))
	require.NoError(t, err)
	require.Equal(t, "full_reduce", c.Optimizer)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, 4, c.CacheSize)
}

func TestParseInvalid(t *testing.T) {
	for _, src := range []string{
		"optimizer: teleport\n",
		"cache_size: -1\n",
		"log_level: loud\n",
		"optimizer: [\n",
	} {
		_, err := Parse([]byte(src))
		require.Error(t, err, src)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zxopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("optimizer: identity\nlog_level: disabled\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "identity", c.Optimizer)

	tr, err := c.NewTransformer()
	require.NoError(t, err)
	q := circuit.LineQubits(1)
	in := circuit.New(circuit.H.On(q[0]), circuit.H.On(q[0]))
	out, err := tr.Transform(in)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumOperations())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
