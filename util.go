package strike

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order. The container is little-endian throughout.
	Order binary.ByteOrder = LE
)

const BUFFER_SIZE = 4096

var empty [BUFFER_SIZE]byte

// Roundup rounds n up to the nearest multiple of align.
// align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// Padding returns how many bytes must follow n to reach the next multiple of align.
func Padding[T constraints.Integer](n, align T) T { return Roundup(n, align) - n }

// CheckZeros verifies that every byte of b is zero, reporting the first
// offending byte relative to offset.
func CheckZeros(offset int64, b []byte) error {
	for i, v := range b {
		if v != 0 {
			return &UnexpectedMagicError{Expected: []byte{0}, Actual: []byte{v}, Offset: offset + int64(i)}
		}
	}
	return nil
}
