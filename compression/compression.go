package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// InflateData decompresses a complete zlib stream.
func InflateData(compressedData []byte) ([]byte, error) {
	reader := bytes.NewReader(compressedData)

	zlibReader, err := zlib.NewReader(reader)
	if err != nil {
		return nil, err
	}
	defer zlibReader.Close()
	var decompressedData bytes.Buffer
	_, err = io.Copy(&decompressedData, zlibReader)
	if err != nil {
		return nil, err
	}
	return decompressedData.Bytes(), nil
}

// DeflateData compresses data into a zlib stream at the given level.
func DeflateData(data []byte, level int) ([]byte, error) {
	var compressedData bytes.Buffer
	zlibWriter, err := zlib.NewWriterLevel(&compressedData, level)
	if err != nil {
		return nil, err
	}
	if _, err = zlibWriter.Write(data); err != nil {
		zlibWriter.Close()
		return nil, err
	}
	if err = zlibWriter.Close(); err != nil {
		return nil, err
	}
	return compressedData.Bytes(), nil
}
