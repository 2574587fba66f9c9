package pngDecoder

import (
	"bytes"

	"pnGo/oops"
)

const signatureLength = 8

var pngSignature = []uint8{137, 80, 78, 71, 13, 10, 26, 10}

// checkSignature validates the leading 8 bytes. It does not consume them.
func checkSignature(data []byte) error {
	if len(data) < signatureLength {
		return oops.New(ErrMalformedSignature, "need %d bytes, got %d", signatureLength, len(data))
	}
	if !bytes.Equal(pngSignature, data[:signatureLength]) {
		return oops.New(ErrMalformedSignature, "got % x", data[:signatureLength])
	}
	return nil
}
