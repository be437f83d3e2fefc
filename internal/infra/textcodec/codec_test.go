package textcodec

import (
	"testing"

	"github.com/runoshun/hostutil/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_UTF8(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8", " utf-8 "} {
		got, err := Decode([]byte("héllo\n"), name)
		require.NoError(t, err, name)
		assert.Equal(t, "héllo\n", got)
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode([]byte{0x66, 0xff, 0xfe}, "utf-8")
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestDecode_Latin1(t *testing.T) {
	// 0xe9 is "é" in ISO-8859-1 / windows-1252.
	got, err := Decode([]byte{'c', 'a', 'f', 0xe9}, "latin1")
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func TestDecode_ShiftJIS(t *testing.T) {
	// "日本" in Shift_JIS.
	got, err := Decode([]byte{0x93, 0xfa, 0x96, 0x7b}, "shift_jis")
	require.NoError(t, err)
	assert.Equal(t, "日本", got)
}

func TestDecode_UnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "klingon")
	assert.ErrorIs(t, err, domain.ErrUnknownEncoding)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("utf-16le"))
	assert.ErrorIs(t, Validate("nope"), domain.ErrUnknownEncoding)
}
