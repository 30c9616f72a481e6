// Package wireio adapts the mcwire slice codecs to io.Reader/io.Writer,
// for code that talks to a connection rather than a pre-read buffer.
package wireio

import (
	"encoding/binary"
	"io"

	"github.com/rawbytedev/mcwire"
)

// WriteVarint encodes v to w and returns the number of bytes written.
func WriteVarint(w io.Writer, v int32) (int, error) {
	var scratch [mcwire.MaxVarintLen]byte
	n, _ := mcwire.PutVarint(scratch[:], 0, v)
	return w.Write(scratch[:n])
}

// WriteVarlong encodes v to w and returns the number of bytes written.
func WriteVarlong(w io.Writer, v int64) (int, error) {
	var scratch [mcwire.MaxVarlongLen]byte
	n, _ := mcwire.PutVarlong(scratch[:], 0, v)
	return w.Write(scratch[:n])
}

// WritePosition puts p on the wire as its packed uint64, big-endian.
func WritePosition(w io.Writer, p mcwire.Position) error {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], p.Uint64())
	_, err := w.Write(scratch[:])
	return err
}
