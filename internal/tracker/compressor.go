package tracker

import (
	"fmt"

	"gamepulse/internal/structures"
	"gamepulse/internal/tracker/interfaces"
	"github.com/klauspost/compress/zstd"
)

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	return z.decoder.DecodeAll(val, nil)
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// PassthroughCompression leaves snapshot bytes untouched, keeping the
// persisted file readable as plain JSON.
type PassthroughCompression struct{}

func (PassthroughCompression) Compress(val []byte) ([]byte, error)   { return val, nil }
func (PassthroughCompression) Decompress(val []byte) ([]byte, error) { return val, nil }

// NewCompressor picks the snapshot codec from config. The default is
// passthrough so data.json stays directly publishable.
func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if conf.Snapshot.Compress {
		return NewZstdCompressor()
	}
	return PassthroughCompression{}, nil
}
