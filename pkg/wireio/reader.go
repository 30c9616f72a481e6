package wireio

import (
	"encoding/binary"
	"io"

	"github.com/rawbytedev/mcwire"
)

// ReadVarint decodes a 32-bit varint from r one byte at a time. Reader
// errors come back untouched; a value running past 32 bits yields a
// *mcwire.TooBigError.
func ReadVarint(r io.ByteReader) (int32, error) {
	var value uint32
	var pos uint
	read := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		read++

		value |= uint32(b&0x7F) << pos

		if b&0x80 == 0 {
			return int32(value), nil
		}

		pos += 7
		if pos >= 32 {
			return 0, &mcwire.TooBigError{Bits: 32, Partial: int64(int32(value)), Len: read}
		}
	}
}

// ReadVarlong decodes a 64-bit varint from r one byte at a time.
func ReadVarlong(r io.ByteReader) (int64, error) {
	var value uint64
	var pos uint
	read := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		read++

		value |= uint64(b&0x7F) << pos

		if b&0x80 == 0 {
			return int64(value), nil
		}

		pos += 7
		if pos >= 64 {
			return 0, &mcwire.TooBigError{Bits: 64, Partial: int64(value), Len: read}
		}
	}
}

// ReadPosition reads the 8-byte big-endian packed form and unpacks it.
func ReadPosition(r io.Reader) (mcwire.Position, error) {
	var scratch [8]byte
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return mcwire.Position{}, err
	}
	return mcwire.PositionFromUint64(binary.BigEndian.Uint64(scratch[:])), nil
}
