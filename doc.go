// Package mcwire implements the compact wire datatypes used by
// Minecraft-style binary protocols: LEB128-like VarInt/VarLong integers
// (7 payload bits per byte, continuation-bit terminated) and the 64-bit
// bit-packed block Position.
//
// All codecs are pure functions over byte slices with explicit offsets,
// safe for concurrent use. pkg/wireio adds io.Reader/io.Writer forms for
// connection code.
package mcwire
