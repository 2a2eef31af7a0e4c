package tracker

import (
	"bytes"
	"testing"

	"gamepulse/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	original := bytes.Repeat([]byte(`{"playing":50,"visits":500}`), 100)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original))

	restored, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestZstdCompressor_DecompressGarbage(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	_, err = c.Decompress([]byte("not zstd at all"))
	assert.Error(t, err)
}

func TestPassthroughCompression(t *testing.T) {
	c := PassthroughCompression{}

	in := []byte(`{"totalPlaying":60}`)
	out, err := c.Compress(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	back, err := c.Decompress(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestNewCompressor_PicksByConfig(t *testing.T) {
	plain, err := NewCompressor(&structures.Config{})
	require.NoError(t, err)
	assert.IsType(t, PassthroughCompression{}, plain)

	zc, err := NewCompressor(&structures.Config{
		Snapshot: structures.SnapshotConfig{Compress: true},
	})
	require.NoError(t, err)
	assert.IsType(t, &ZstdCompression{}, zc)
}
