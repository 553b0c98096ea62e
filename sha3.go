// Package sha3 wraps the SHA3-256 sponge from golang.org/x/crypto/sha3 in a
// single-use incremental Hasher.
package sha3

import (
	"encoding"
	"fmt"
	"hash"
	"unsafe"

	xsha3 "golang.org/x/crypto/sha3"
)

const (
	// DigestSize is the size of a SHA3-256 digest in bytes.
	DigestSize = 32
	// BlockSize is the rate of SHA3-256 in bytes.
	BlockSize = 136
)

// Hasher accumulates input for a single SHA3-256 digest.
//
// The zero value is ready to use and has absorbed no input.
// A Hasher is consumed by the first call to any of the Finalize methods.
// After that every method except Finalized panics; create a new Hasher with New.
// A Hasher must not be used from multiple goroutines without external locking.
type Hasher struct {
	h    hash.Hash
	done bool
}

// New returns a Hasher which has absorbed no input.
func New() *Hasher {
	return &Hasher{h: xsha3.New256()}
}

// Update absorbs p into the state.
func (h *Hasher) Update(p []byte) {
	h.live().Write(p)
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Finalize pads and squeezes the state, returning the digest.
func (h *Hasher) Finalize() (ret Digest) {
	h.FinalizeIntoArray((*[DigestSize]byte)(&ret))
	return ret
}

// FinalizeInto pads and squeezes the state into out.
// FinalizeInto panics if len(out) != DigestSize.
func (h *Hasher) FinalizeInto(out []byte) {
	if len(out) != DigestSize {
		panic(fmt.Sprintf("sha3: len(out) = %d, want %d", len(out), DigestSize))
	}
	h.FinalizeIntoArray((*[DigestSize]byte)(out))
}

// FinalizeIntoArray pads and squeezes the state into out.
func (h *Hasher) FinalizeIntoArray(out *[DigestSize]byte) {
	st := h.live()
	h.h = nil
	h.done = true
	st.Sum(out[:0])
}

// FinalizeIntoRaw pads and squeezes the state into the DigestSize bytes starting at out.
//
// The caller must guarantee that out points to at least DigestSize bytes of writable memory.
// Nothing is checked; violating this is undefined behavior.
func (h *Hasher) FinalizeIntoRaw(out unsafe.Pointer) {
	h.FinalizeIntoArray((*[DigestSize]byte)(out))
}

// Finalized reports whether h has been consumed by a Finalize method.
func (h *Hasher) Finalized() bool {
	return h.done
}

// Clone returns an independent copy of the state absorbed so far.
func (h *Hasher) Clone() *Hasher {
	data, err := h.live().(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic(err)
	}
	st := xsha3.New256()
	if err := st.(encoding.BinaryUnmarshaler).UnmarshalBinary(data); err != nil {
		panic(err)
	}
	return &Hasher{h: st}
}

func (h *Hasher) live() hash.Hash {
	if h.done {
		panic("sha3: Hasher used after Finalize")
	}
	if h.h == nil {
		h.h = xsha3.New256()
	}
	return h.h
}

// Sum returns the SHA3-256 digest of data.
func Sum(data []byte) Digest {
	h := New()
	h.Update(data)
	return h.Finalize()
}
