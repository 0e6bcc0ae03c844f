package webgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Bytes(t *testing.T) {
	got := float32Bytes(nil, []float32{1, -2})
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f, 0, 0, 0, 0xc0}, got)

	// reuses the buffer when it fits
	buf := make([]byte, 0, 16)
	got = float32Bytes(buf, []float32{0.5})
	assert.Equal(t, []byte{0, 0, 0, 0x3f}, got)
	assert.Same(t, &buf[:1][0], &got[0])
}

func TestUint16Bytes(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0x34, 0x12}, uint16Bytes([]uint16{1, 0x1234}))
}
