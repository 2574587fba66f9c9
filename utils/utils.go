package utils

import (
	"encoding/binary"
)

func BytesToLength(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

func LengthToBytes(length uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, length)
	return buf
}

// Must panics if err is non-nil. Intended for fixtures and setup code where
// a failure is a programming error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func Must1[T any](v T, err error) T {
	Must(err)
	return v
}
