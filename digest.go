package sha3

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// EmptyDigest is the SHA3-256 digest of zero bytes of input.
var EmptyDigest = mustParseDigest("0xa7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")

// Digest is the output of SHA3-256.
type Digest [DigestSize]byte

// ParseDigest parses a 0x prefixed hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return Digest{}, errors.Wrapf(err, "parsing digest %q", s)
	}
	if len(data) != DigestSize {
		return Digest{}, errors.Errorf("digest has wrong length. HAVE: %d WANT: %d", len(data), DigestSize)
	}
	return Digest(data), nil
}

func mustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d[:]...)
}

// IsZero reports whether every byte of d is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the 0x prefixed hex encoding of d.
func (d Digest) String() string {
	return hexutil.Encode(d[:])
}

// MarshalText implements encoding.TextMarshaler using the 0x prefixed hex form.
func (d Digest) MarshalText() ([]byte, error) {
	return hexutil.Bytes(d[:]).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler. It requires exactly DigestSize bytes.
func (d *Digest) UnmarshalText(data []byte) error {
	return hexutil.UnmarshalFixedText("Digest", data, d[:])
}
