package pngDecoder

import "errors"

// Every error returned by this package wraps exactly one of these, so
// callers can branch with errors.Is. The message of the wrapping error names
// the offending value, offset or chunk type.
var (
	ErrMalformedSignature      = errors.New("malformed png signature")
	ErrUnexpectedFirstChunk    = errors.New("first chunk is not IHDR")
	ErrTruncatedStream         = errors.New("truncated chunk stream")
	ErrChecksumMismatch        = errors.New("chunk checksum mismatch")
	ErrInvalidHeaderLength     = errors.New("invalid IHDR length")
	ErrDuplicateHeader         = errors.New("more than one IHDR chunk")
	ErrUnsupportedCompression  = errors.New("unsupported compression method")
	ErrUnsupportedFilterMethod = errors.New("unsupported filter method")
	ErrInvalidPixelMode        = errors.New("invalid color type and bit depth combination")
	ErrInvalidPaletteLength    = errors.New("palette length is not a multiple of 3")
	ErrDecompressionFailure    = errors.New("image data decompression failed")
	ErrSizeMismatch            = errors.New("decompressed size does not match image dimensions")
	ErrUnsupportedFilterType   = errors.New("unsupported scanline filter type")
	ErrUnsupportedInterlace    = errors.New("unsupported interlace method")
	ErrUnsupportedPixelMode    = errors.New("unsupported pixel mode")
	ErrPaletteIndexOutOfRange  = errors.New("palette index out of range")
)
