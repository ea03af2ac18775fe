package glb_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/karitora/gltfgen/glb"
)

func chunk(tag uint32, payload []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, uint32(len(payload)))
	binary.Write(&b, binary.LittleEndian, tag)
	b.Write(payload)
	return b.Bytes()
}

func file(version uint32, chunks ...[]byte) []byte {
	var body bytes.Buffer
	for _, c := range chunks {
		body.Write(c)
	}
	var b bytes.Buffer
	b.WriteString("glTF")
	binary.Write(&b, binary.LittleEndian, version)
	binary.Write(&b, binary.LittleEndian, uint32(12+body.Len()))
	b.Write(body.Bytes())
	return b.Bytes()
}

const (
	tagJSON = 0x4E4F534A
	tagBIN  = 0x004E4942
)

var minimalJSON = []byte(`{"asset": {"version": "2.0"}}`)

func TestFromBytes(t *testing.T) {
	asset, err := glb.FromBytes(file(2, chunk(tagJSON, minimalJSON)))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if asset.Version != 2 {
		t.Fatalf("version = %d, want 2", asset.Version)
	}
	if asset.Doc.Asset.Version != "2.0" {
		t.Fatalf("asset.version = %q, want 2.0", asset.Doc.Asset.Version)
	}
	if asset.BIN != nil {
		t.Fatalf("BIN = %v, want nil without a binary chunk", asset.BIN)
	}
}

func TestFromBytesWithBinaryChunk(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	asset, err := glb.FromBytes(file(2, chunk(tagJSON, minimalJSON), chunk(tagBIN, payload)))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !bytes.Equal(asset.BIN, payload) {
		t.Fatalf("BIN = %v, want %v", asset.BIN, payload)
	}
}

func TestIncorrectMagicNumber(t *testing.T) {
	good := file(2, chunk(tagJSON, minimalJSON))
	for i := 0; i < 4; i++ {
		bad := append([]byte(nil), good...)
		bad[i] ^= 0xFF
		if _, err := glb.FromBytes(bad); !errors.Is(err, glb.ErrIncorrectMagicNumber) {
			t.Fatalf("corrupt magic byte %d: err = %v, want ErrIncorrectMagicNumber", i, err)
		}
	}
}

func TestIncorrectFormatting(t *testing.T) {
	cases := map[string][]byte{
		"empty":             {},
		"truncated header":  []byte("glTF\x02"),
		"no chunks":         file(2),
		"wrong first tag":   file(2, chunk(tagBIN, []byte{1})),
		"truncated payload": file(2, chunk(tagJSON, minimalJSON))[:20],
		"wrong second tag":  file(2, chunk(tagJSON, minimalJSON), chunk(tagJSON, minimalJSON)),
	}
	for name, data := range cases {
		if _, err := glb.FromBytes(data); !errors.Is(err, glb.ErrIncorrectFormatting) {
			t.Fatalf("%s: err = %v, want ErrIncorrectFormatting", name, err)
		}
	}
}

func TestInvalidJSON(t *testing.T) {
	cases := map[string][]byte{
		"not UTF-8":        file(2, chunk(tagJSON, []byte{0xFF, 0xFE})),
		"not JSON":         file(2, chunk(tagJSON, []byte("not json"))),
		"missing required": file(2, chunk(tagJSON, []byte(`{}`))),
	}
	for name, data := range cases {
		if _, err := glb.FromBytes(data); !errors.Is(err, glb.ErrInvalidJSON) {
			t.Fatalf("%s: err = %v, want ErrInvalidJSON", name, err)
		}
	}
}
