package wireio

import (
	"bytes"
	"io"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/mcwire"
)

func TestStreamVarintRoundTrip(t *testing.T) {
	condition := func(v int32) bool {
		var buf bytes.Buffer
		n, err := WriteVarint(&buf, v)
		require.NoError(t, err)
		require.Equal(t, mcwire.VarintLen(v), n)
		require.Equal(t, mcwire.AppendVarint(nil, v), buf.Bytes())
		got, err := ReadVarint(&buf)
		require.NoError(t, err)
		return assert.ObjectsAreEqual(v, got)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestStreamVarlongRoundTrip(t *testing.T) {
	condition := func(v int64) bool {
		var buf bytes.Buffer
		n, err := WriteVarlong(&buf, v)
		require.NoError(t, err)
		require.Equal(t, mcwire.VarlongLen(v), n)
		got, err := ReadVarlong(&buf)
		require.NoError(t, err)
		return assert.ObjectsAreEqual(v, got)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestStreamPosition(t *testing.T) {
	p := mcwire.Position{X: -1560, Y: -333, Z: -9696}

	var buf bytes.Buffer
	require.NoError(t, WritePosition(&buf, p))
	require.Len(t, buf.Bytes(), 8)

	got, err := ReadPosition(&buf)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestReadErrorsPropagate(t *testing.T) {
	_, err := ReadVarint(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)

	// continuation byte with nothing behind it
	_, err = ReadVarlong(bytes.NewReader([]byte{0x80}))
	require.ErrorIs(t, err, io.EOF)

	_, err = ReadPosition(bytes.NewReader([]byte{0, 1, 2}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadTooBig(t *testing.T) {
	_, err := ReadVarint(bytes.NewReader(bytes.Repeat([]byte{0xff}, 6)))
	require.ErrorIs(t, err, mcwire.ErrTooBig)

	var tbe *mcwire.TooBigError
	require.ErrorAs(t, err, &tbe)
	assert.Equal(t, 32, tbe.Bits)
}
