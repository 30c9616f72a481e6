package mcwire

import "io"

const (
	segmentBits = 0x7F // low 7 bits of each encoded byte carry value
	continueBit = 0x80 // high bit set means more bytes follow
)

const (
	// MaxVarintLen is the largest number of bytes a 32-bit varint occupies.
	MaxVarintLen = 5
	// MaxVarlongLen is the largest number of bytes a 64-bit varint occupies.
	MaxVarlongLen = 10
)

// VarInt is a 32-bit signed integer with a variable-length wire encoding.
type VarInt int32

// VarLong is a 64-bit signed integer with a variable-length wire encoding.
type VarLong int64

func (v VarInt) Len() int                 { return VarintLen(int32(v)) }
func (v VarInt) Append(dst []byte) []byte { return AppendVarint(dst, int32(v)) }

func (v VarLong) Len() int                 { return VarlongLen(int64(v)) }
func (v VarLong) Append(dst []byte) []byte { return AppendVarlong(dst, int64(v)) }

// Varint decodes a 32-bit varint from buf starting at offset. It returns
// the value and the number of bytes consumed so the caller can advance
// its cursor. Running out of input mid-value yields io.ErrUnexpectedEOF;
// more continuation bytes than 32 bits allow yields a *TooBigError.
func Varint(buf []byte, offset int) (int32, int, error) {
	var value uint32
	var pos uint
	n := 0
	for {
		if offset+n >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[offset+n]
		n++

		value |= uint32(b&segmentBits) << pos

		if b&continueBit == 0 {
			break
		}

		pos += 7
		if pos >= 32 {
			return 0, 0, &TooBigError{Bits: 32, Partial: int64(int32(value)), Len: len(buf)}
		}
	}
	return int32(value), n, nil
}

// Varlong decodes a 64-bit varint from buf starting at offset.
func Varlong(buf []byte, offset int) (int64, int, error) {
	var value uint64
	var pos uint
	n := 0
	for {
		if offset+n >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[offset+n]
		n++

		value |= uint64(b&segmentBits) << pos

		if b&continueBit == 0 {
			break
		}

		pos += 7
		if pos >= 64 {
			return 0, 0, &TooBigError{Bits: 64, Partial: int64(value), Len: len(buf)}
		}
	}
	return int64(value), n, nil
}

// PutVarint encodes v into buf starting at offset and returns the number
// of bytes written, or io.ErrShortBuffer if buf cannot hold the encoding
// (up to MaxVarintLen bytes). The sign bits are carried as value bits:
// negative numbers always take the full 5 bytes.
func PutVarint(buf []byte, offset int, v int32) (int, error) {
	uv := uint32(v) // bit-for-bit, so the shifts below are logical
	n := 0
	for uv&^uint32(segmentBits) != 0 {
		if offset+n >= len(buf) {
			return 0, io.ErrShortBuffer
		}
		buf[offset+n] = byte(uv&segmentBits) | continueBit
		n++
		uv >>= 7
	}
	if offset+n >= len(buf) {
		return 0, io.ErrShortBuffer
	}
	buf[offset+n] = byte(uv)
	n++
	return n, nil
}

// PutVarlong encodes v into buf starting at offset and returns the number
// of bytes written, or io.ErrShortBuffer if buf cannot hold the encoding
// (up to MaxVarlongLen bytes).
func PutVarlong(buf []byte, offset int, v int64) (int, error) {
	uv := uint64(v)
	n := 0
	for uv&^uint64(segmentBits) != 0 {
		if offset+n >= len(buf) {
			return 0, io.ErrShortBuffer
		}
		buf[offset+n] = byte(uv&segmentBits) | continueBit
		n++
		uv >>= 7
	}
	if offset+n >= len(buf) {
		return 0, io.ErrShortBuffer
	}
	buf[offset+n] = byte(uv)
	n++
	return n, nil
}

// AppendVarint appends the encoding of v to dst and returns the extended
// slice.
func AppendVarint(dst []byte, v int32) []byte {
	uv := uint32(v)
	for uv >= continueBit {
		dst = append(dst, byte(uv)|continueBit)
		uv >>= 7
	}
	return append(dst, byte(uv))
}

// AppendVarlong appends the encoding of v to dst and returns the extended
// slice.
func AppendVarlong(dst []byte, v int64) []byte {
	uv := uint64(v)
	for uv >= continueBit {
		dst = append(dst, byte(uv)|continueBit)
		uv >>= 7
	}
	return append(dst, byte(uv))
}

// VarintLen reports how many bytes the encoding of v occupies without
// encoding it.
func VarintLen(v int32) int {
	n := 1
	for uv := uint32(v); uv >= continueBit; uv >>= 7 {
		n++
	}
	return n
}

// VarlongLen reports how many bytes the encoding of v occupies without
// encoding it.
func VarlongLen(v int64) int {
	n := 1
	for uv := uint64(v); uv >= continueBit; uv >>= 7 {
		n++
	}
	return n
}
