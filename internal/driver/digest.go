package driver

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"

	"arrayfmt/internal/format"
)

// Digest is a SHA-256 value.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// combineDigest: H(content || part1 || part2 ...). Parts are hashed in order.
func combineDigest(content []byte, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content)
	for _, p := range parts {
		_, _ = h.Write(p[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// optionsKey is the part of the format options that changes output.
type optionsKey struct {
	Schema          uint16 `msgpack:"schema"`
	IndentWidth     int    `msgpack:"indent_width"`
	UseTabs         bool   `msgpack:"use_tabs"`
	WrapThreshold   int    `msgpack:"wrap_threshold"`
	ElementsPerLine []int  `msgpack:"elements_per_line"`
}

// optionsDigest hashes the msgpack encoding of opt. Two option sets with
// the same digest produce the same output for every input.
func optionsDigest(opt format.Options) (Digest, error) {
	if opt.IndentWidth <= 0 {
		opt.IndentWidth = 4
	}
	data, err := msgpack.Marshal(optionsKey{
		Schema:          diskCacheSchemaVersion,
		IndentWidth:     opt.IndentWidth,
		UseTabs:         opt.UseTabs,
		WrapThreshold:   opt.WrapThreshold,
		ElementsPerLine: opt.ElementsPerLine,
	})
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(data), nil
}

// cacheKey identifies a file content formatted with a given option set.
func cacheKey(content []byte, opts Digest) Digest {
	return combineDigest(content, opts)
}
