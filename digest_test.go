package sha3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestText(t *testing.T) {
	d := Sum([]byte("hello world"))
	require.Equal(t, "0x644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938", d.String())

	d2, err := ParseDigest(d.String())
	require.NoError(t, err)
	require.Equal(t, d, d2)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"`+d.String()+`"`, string(data))
	var d3 Digest
	require.NoError(t, json.Unmarshal(data, &d3))
	require.Equal(t, d, d3)
}

func TestParseDigestErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"0x",
		"644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938",
		"0x644bcc7e",
		"0x644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e393800",
		"0xzz4bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938",
	} {
		_, err := ParseDigest(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestDigestBytes(t *testing.T) {
	d := EmptyDigest
	b := d.Bytes()
	b[0] ^= 0xff
	require.Equal(t, EmptyDigest, d)
	require.False(t, d.IsZero())
	require.True(t, Digest{}.IsZero())
}
