package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	assert.True(t, Loaded(Regular))
	assert.True(t, Loaded(Small))
	assert.Greater(t, Regular.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
	assert.False(t, Loaded("broken"))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
