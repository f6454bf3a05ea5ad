package gollections

import (
	"bytes"
	"compress/zlib"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

type Compression interface {
	Encode(data []byte) []byte
	Decode(data []byte) ([]byte, error)
}

type NoCompression struct{}

func NewNoCompression() *NoCompression {
	return &NoCompression{}
}

func (c *NoCompression) Encode(data []byte) []byte {
	return data
}

func (c *NoCompression) Decode(data []byte) ([]byte, error) {
	return data, nil
}

type SnappyCompression struct{}

func NewSnappyCompression() *SnappyCompression {
	return &SnappyCompression{}
}

func (c *SnappyCompression) Encode(data []byte) []byte {
	return snappy.Encode([]byte{}, data)
}

func (c *SnappyCompression) Decode(data []byte) ([]byte, error) {
	res, err := snappy.Decode([]byte{}, data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type ZlibCompression struct{}

func NewZlibCompression() *ZlibCompression {
	return &ZlibCompression{}
}

func (c *ZlibCompression) Encode(data []byte) []byte {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes()
}

func (c *ZlibCompression) Decode(data []byte) ([]byte, error) {
	b := bytes.NewBuffer(data)
	r, err := zlib.NewReader(b)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.ReadFrom(r)
	return out.Bytes(), nil
}

type Lz4Compression struct{}

func NewLz4Compression() *Lz4Compression {
	return &Lz4Compression{}
}

func (c *Lz4Compression) Encode(data []byte) []byte {
	var b bytes.Buffer
	w := lz4.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes()
}

func (c *Lz4Compression) Decode(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewBuffer(data))
	var out bytes.Buffer
	_, err := out.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewZstdCompression() *ZstdCompression {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder}
}

func (c *ZstdCompression) Encode(data []byte) []byte {
	return c.encoder.EncodeAll(data, make([]byte, 0))
}

func (c *ZstdCompression) Decode(data []byte) ([]byte, error) {
	return c.decoder.DecodeAll(data, make([]byte, 0))
}
