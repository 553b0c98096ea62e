// Package eip191 formats and hashes messages as described in EIP-191,
// using the "Core Signed Message" label.
//
// A formatted message is
//
//	"\x19Core Signed Message:\n" + decimal(len(msg)) + msg
//
// The prefix and length are always ASCII; msg is copied through unchanged.
package eip191

import (
	"io"
	"strconv"

	sha3 "github.com/brendoncarroll/go-sha3"
)

// Prefix starts every formatted message.
const Prefix = "\x19Core Signed Message:\n"

// Message returns the formatted form of msg. msg is not modified.
func Message(msg []byte) []byte {
	var lenBuf [20]byte
	lenStr := strconv.AppendInt(lenBuf[:0], int64(len(msg)), 10)

	out := make([]byte, 0, len(Prefix)+len(lenStr)+len(msg))
	out = append(out, Prefix...)
	out = append(out, lenStr...)
	out = append(out, msg...)
	return out
}

// HashMessage returns the digest of the formatted form of msg.
// This is the value passed to signature creation and verification.
func HashMessage(msg []byte) sha3.Digest {
	return sha3.Sum(Message(msg))
}

// Write writes the formatted form of msg to w without building it in memory.
func Write(w io.Writer, msg []byte) (int, error) {
	var total int
	var lenBuf [20]byte
	for _, part := range [][]byte{
		[]byte(Prefix),
		strconv.AppendInt(lenBuf[:0], int64(len(msg)), 10),
		msg,
	} {
		n, err := w.Write(part)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
