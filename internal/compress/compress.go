// Package compress stores captured source bytes as zstd frames.
package compress

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// magic is the zstd frame magic number; JSON text never starts with it.
var magic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// encoder and decoder are shared; EncodeAll and DecodeAll are safe for concurrent use.
var (
	encoder = mustEncoder()
	decoder = mustDecoder()
)

func mustEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compress: zstd encoder: " + err.Error())
	}
	return enc
}

func mustDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		panic("compress: zstd decoder: " + err.Error())
	}
	return dec
}

// Encode returns data compressed into a single zstd frame.
func Encode(data []byte) []byte {
	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2+len(magic)))
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

// Decode returns data uncompressed when it is a zstd frame, data itself otherwise.
func Decode(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}
	return decoder.DecodeAll(data, nil)
}
