package webgl

import (
	"encoding/binary"
	"math"
)

// float32Bytes encodes data little endian, the layout js typed arrays use on
// every platform we target.
func float32Bytes(dst []byte, data []float32) []byte {
	n := len(data) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, f := range data {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
	return dst
}

func uint16Bytes(data []uint16) []byte {
	buf := make([]byte, len(data)*2)
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return buf
}
