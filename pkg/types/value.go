package types

import (
	"encoding/binary"
	"math"
)

// DataValue holds four bytes that can be read as a signed integer, a
// float, or raw bytes. The byte order is little-endian. Nodes only ever
// store and read the integer view.
type DataValue [4]byte

// IntValue returns a DataValue holding v.
func IntValue(v int32) DataValue {
	var d DataValue
	binary.LittleEndian.PutUint32(d[:], uint32(v))
	return d
}

// FloatValue returns a DataValue holding the IEEE 754 bits of f.
func FloatValue(f float32) DataValue {
	var d DataValue
	binary.LittleEndian.PutUint32(d[:], math.Float32bits(f))
	return d
}

// Int32 reads the value as a signed integer.
func (d DataValue) Int32() int32 {
	return int32(binary.LittleEndian.Uint32(d[:]))
}

// Float32 reads the value as a float.
func (d DataValue) Float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(d[:]))
}

// Bytes returns a copy of the raw bytes.
func (d DataValue) Bytes() [4]byte {
	return d
}
