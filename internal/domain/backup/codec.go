package backup

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"wakala/internal/core/apperror"
)

// Codec serializes archives. Safe for concurrent use: the zstd
// EncodeAll/DecodeAll paths are stateless per call.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewCodec creates a backup codec.
func NewCodec() (*Codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Codec{encoder: encoder, decoder: decoder}, nil
}

// Encode marshals and compresses an archive.
func (c *Codec) Encode(a Archive) ([]byte, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal archive: %w", err)
	}
	return c.encoder.EncodeAll(raw, nil), nil
}

// Decode decompresses and unmarshals an archive, rejecting files that
// were not produced by this system.
func (c *Codec) Decode(data []byte) (Archive, error) {
	raw, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return Archive{}, apperror.NewBadBackup("file is not a valid backup archive").WithCause(err)
	}

	var a Archive
	if err := json.Unmarshal(raw, &a); err != nil {
		return Archive{}, apperror.NewBadBackup("backup content is not readable").WithCause(err)
	}

	if a.Signature != Signature {
		return Archive{}, apperror.NewBadBackup("backup was produced by a different system").
			WithDetail("signature", a.Signature)
	}
	if a.Version != Version {
		return Archive{}, apperror.NewBadBackup("unsupported backup version").
			WithDetail("version", a.Version)
	}

	return a, nil
}
