package event

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Encoding tags how a stored payload is laid out. Values are persisted.
type Encoding uint8

const (
	EncodingJSON     Encoding = 0
	EncodingJSONZstd Encoding = 1
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingJSONZstd:
		return "json+zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// zstd encoder and decoder are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("event: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("event: zstd decoder initialization failed: " + err.Error())
	}
}

// Codec turns payloads into stored bytes and back.
type Codec struct {
	reg *Registry
	// CompressThreshold is the JSON size above which payloads are zstd
	// compressed. Zero disables compression.
	CompressThreshold int
}

// NewCodec returns a codec decoding through reg.
func NewCodec(reg *Registry, compressThreshold int) *Codec {
	if reg == nil {
		reg = Default()
	}
	return &Codec{reg: reg, CompressThreshold: compressThreshold}
}

// Registry returns the registry used for decoding.
func (c *Codec) Registry() *Registry { return c.reg }

// Encode serialises p. Compression is kept only when it shrinks the payload.
func (c *Codec) Encode(p Payload) ([]byte, Encoding, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s: %w", p.Kind(), err)
	}
	if c.CompressThreshold <= 0 || len(raw) < c.CompressThreshold {
		return raw, EncodingJSON, nil
	}
	z := zstdEncoder.EncodeAll(raw, nil)
	if len(z) >= len(raw) {
		return raw, EncodingJSON, nil
	}
	return z, EncodingJSONZstd, nil
}

// Decode reverses Encode. Unknown kinds surface errs.ErrUnknownKind.
func (c *Codec) Decode(kind Kind, enc Encoding, data []byte) (Payload, error) {
	if !c.reg.Known(kind) {
		return c.reg.Decode(kind, nil)
	}
	switch enc {
	case EncodingJSON:
	case EncodingJSONZstd:
		raw, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress %s: %w", kind, err)
		}
		data = raw
	default:
		return nil, fmt.Errorf("decode %s: unsupported encoding %s", kind, enc)
	}
	return c.reg.Decode(kind, data)
}
