package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize is the fixed read size used while loading input
const chunkSize = 8192

// ErrInputUnreadable is returned when the input file cannot be opened
var ErrInputUnreadable = errors.New("input unreadable")

// LoadInput reads the whole file at path into memory.
// It returns the contents, their exact length and the number of chunks read.
// An empty file yields an empty buffer and no error.
func LoadInput(path string) ([]byte, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open input file (%s): %w: %w", path, ErrInputUnreadable, err)
	}
	defer file.Close()

	data, chunks, err := ReadAll(file)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, len(data), chunks, nil
}

// ReadAll concatenates r into one buffer, chunkSize bytes at a time.
func ReadAll(r io.Reader) ([]byte, int, error) {
	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	chunks := 0

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			chunks++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, chunks, err
		}
	}

	return buf.Bytes(), chunks, nil
}
