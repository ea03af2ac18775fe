// Package glb reads the binary glTF container format. A GLB file is a
// 12-byte header followed by chunks; the first chunk must carry the JSON
// document, which is decoded through the gltf package.
package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/karitora/gltfgen/gltf"
)

const (
	headerMagic  = 0x46546C67 // "glTF"
	chunkTagJSON = 0x4E4F534A // "JSON"
	chunkTagBIN  = 0x004E4942 // "BIN\0"
)

var (
	// ErrIncorrectMagicNumber means the file does not start with "glTF".
	ErrIncorrectMagicNumber = errors.New("glb: incorrect magic number")
	// ErrIncorrectFormatting means the container structure is malformed:
	// truncated header, wrong chunk tag, or a chunk payload shorter than
	// its declared length.
	ErrIncorrectFormatting = errors.New("glb: incorrect formatting")
	// ErrInvalidJSON means the JSON chunk is not valid UTF-8 or does not
	// decode as a glTF document.
	ErrInvalidJSON = errors.New("glb: invalid JSON")
)

// GLB is a decoded binary glTF asset.
type GLB struct {
	// Doc is the document decoded from the JSON chunk.
	Doc *gltf.GlTF
	// Version is the container format version from the header.
	Version uint32
	// BIN is the payload of the binary chunk, nil when the file has none.
	BIN []byte
}

// FromReader reads a complete GLB asset from r.
func FromReader(r io.Reader) (*GLB, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, readErr(err)
	}
	if binary.LittleEndian.Uint32(header[0:4]) != headerMagic {
		return nil, ErrIncorrectMagicNumber
	}
	version := binary.LittleEndian.Uint32(header[4:8])

	jsonChunk, tag, err := readChunk(r)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no chunks", ErrIncorrectFormatting)
	}
	if err != nil {
		return nil, err
	}
	if tag != chunkTagJSON {
		return nil, fmt.Errorf("%w: first chunk tag is %#08x, want JSON", ErrIncorrectFormatting, tag)
	}
	if !utf8.Valid(jsonChunk) {
		return nil, fmt.Errorf("%w: JSON chunk is not valid UTF-8", ErrInvalidJSON)
	}
	doc, err := gltf.FromJSON(jsonChunk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	out := &GLB{Doc: doc, Version: version}

	bin, tag, err := readChunk(r)
	switch {
	case err == io.EOF:
		return out, nil
	case err != nil:
		return nil, err
	case tag != chunkTagBIN:
		return nil, fmt.Errorf("%w: second chunk tag is %#08x, want BIN", ErrIncorrectFormatting, tag)
	}
	out.BIN = bin
	return out, nil
}

// FromBytes reads a complete GLB asset from an in-memory file.
func FromBytes(b []byte) (*GLB, error) {
	return FromReader(bytes.NewReader(b))
}

// readChunk reads one chunk header and payload. io.EOF is returned as-is
// when the reader is exhausted exactly at a chunk boundary.
func readChunk(r io.Reader) ([]byte, uint32, error) {
	var header [8]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil {
		if err == io.EOF && n == 0 {
			return nil, 0, io.EOF
		}
		return nil, 0, readErr(err)
	}
	length := binary.LittleEndian.Uint32(header[0:4])
	tag := binary.LittleEndian.Uint32(header[4:8])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, 0, readErr(err)
	}
	return payload, tag, nil
}

// readErr maps a short read onto the formatting error; genuine I/O failures
// pass through.
func readErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: truncated file", ErrIncorrectFormatting)
	}
	return err
}

