package pngDecoder

import (
	"hash/crc32"

	"pnGo/oops"
	"pnGo/utils"
)

const (
	chunkLengthSize = 4
	chunkTypeSize   = 4
	chunkCRCSize    = 4
)

// Critical chunk types.
const (
	chunkIHDR = "IHDR"
	chunkPLTE = "PLTE"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
)

// Chunk is one framed chunk. Data aliases the input buffer.
type Chunk struct {
	Type   string
	Data   []byte
	CRC    uint32
	Offset int
}

// Critical reports whether the chunk type has its ancillary bit clear.
func (c *Chunk) Critical() bool {
	return c.Type[0] >= 'A' && c.Type[0] <= 'Z'
}

// ChunkInfo describes a chunk seen during decoding.
type ChunkInfo struct {
	Type     string
	Length   int
	Offset   int
	Critical bool
}

func (c *Chunk) info() ChunkInfo {
	return ChunkInfo{
		Type:     c.Type,
		Length:   len(c.Data),
		Offset:   c.Offset,
		Critical: c.Critical(),
	}
}

// step tells the framing loop whether another chunk follows.
type step struct {
	next int
	done bool
}

func continueAt(offset int) step { return step{next: offset} }

var done = step{done: true}

// readChunk frames the chunk starting at offset in stream, which holds the
// bytes after the signature. Offsets are relative to the start of stream.
func readChunk(stream []byte, offset int, verifyCRC bool) (Chunk, step, error) {
	cursor := offset
	advance := func(n int, what string) ([]byte, error) {
		if n < 0 || n > len(stream)-cursor {
			return nil, oops.New(ErrTruncatedStream, "reading %s of chunk at offset %d: need %d bytes, %d left", what, offset, n, len(stream)-cursor)
		}
		cursor += n
		return stream[cursor-n : cursor], nil
	}

	if offset == len(stream) {
		return Chunk{}, step{}, oops.New(ErrTruncatedStream, "stream ended at offset %d without %s", offset, chunkIEND)
	}
	length, err := advance(chunkLengthSize, "length")
	if err != nil {
		return Chunk{}, step{}, err
	}
	chunkType, err := advance(chunkTypeSize, "type")
	if err != nil {
		return Chunk{}, step{}, err
	}
	if offset == 0 && string(chunkType) != chunkIHDR {
		return Chunk{}, step{}, oops.New(ErrUnexpectedFirstChunk, "got %q", chunkType)
	}
	dataLength := utils.BytesToLength(length)
	if uint64(dataLength) > uint64(len(stream)) {
		return Chunk{}, step{}, oops.New(ErrTruncatedStream, "chunk %q at offset %d declares %d bytes of data", chunkType, offset, dataLength)
	}
	data, err := advance(int(dataLength), "data")
	if err != nil {
		return Chunk{}, step{}, err
	}
	crc, err := advance(chunkCRCSize, "checksum")
	if err != nil {
		return Chunk{}, step{}, err
	}

	chunk := Chunk{
		Type:   string(chunkType),
		Data:   data,
		CRC:    utils.BytesToLength(crc),
		Offset: offset,
	}
	if verifyCRC {
		sum := crc32.NewIEEE()
		sum.Write(chunkType)
		sum.Write(data)
		if sum.Sum32() != chunk.CRC {
			return Chunk{}, step{}, oops.New(ErrChecksumMismatch, "chunk %q at offset %d: stored %08x, computed %08x", chunk.Type, offset, chunk.CRC, sum.Sum32())
		}
	}

	if chunk.Type == chunkIEND {
		return chunk, done, nil
	}
	return chunk, continueAt(cursor), nil
}
