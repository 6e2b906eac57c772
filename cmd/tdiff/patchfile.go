package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// readPatchFile reads a patch from disk, transparently decompressing
// files with a .zst suffix.
func readPatchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return out, nil
}

// writePatchFile writes a patch to disk, compressing when the path has a
// .zst suffix.
func writePatchFile(path string, data []byte) error {
	if strings.HasSuffix(path, ".zst") {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return err
		}
		defer enc.Close()
		data = enc.EncodeAll(data, nil)
	}
	return os.WriteFile(path, data, 0o644)
}
