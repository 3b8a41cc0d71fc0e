package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_usesDefaultsWhenFlagsUnset(t *testing.T) {
	cfg, err := Load(Flags{MaxReadRate: DefaultMaxReadRate})
	require.NoError(t, err)
	assert.False(t, cfg.Verbose())
	assert.False(t, cfg.AllowEmpty())
	assert.Zero(t, cfg.MaxReadRate())
}

func TestLoad_emptyRateMeansUnlimited(t *testing.T) {
	cfg, err := Load(Flags{})
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxReadRate())
}

func TestLoad_usesFlagsWhenSet(t *testing.T) {
	cfg, err := Load(Flags{Verbose: true, AllowEmpty: true, MaxReadRate: "64MiB"})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose())
	assert.True(t, cfg.AllowEmpty())
	assert.EqualValues(t, 64<<20, cfg.MaxReadRate())
}

func TestLoad_acceptsPlainByteCount(t *testing.T) {
	cfg, err := Load(Flags{MaxReadRate: "1048576"})
	require.NoError(t, err)
	assert.EqualValues(t, 1048576, cfg.MaxReadRate())
}

func TestLoad_returnsErrorForInvalidRate(t *testing.T) {
	_, err := Load(Flags{MaxReadRate: "fast"})
	assert.Error(t, err)
}

func TestLoad_returnsErrorForNegativeRate(t *testing.T) {
	_, err := Load(Flags{MaxReadRate: "-1"})
	assert.Error(t, err)
}
