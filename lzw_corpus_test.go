package lzw

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/ulikunitz/zdata"
)

// TestSilesiaRoundTrip round-trips every file of the Silesia corpus. Real
// mixed data (text, binaries, databases) fills and resets the dictionary
// many times per file.
func TestSilesiaRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping corpus round-trip in short mode")
	}

	type file struct {
		name string
		data []byte
	}
	var files []file
	err := fs.WalkDir(zdata.Silesia, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(zdata.Silesia, path)
			if err != nil {
				return err
			}
			files = append(files, file{name: path, data: data})
			return nil
		})
	if err != nil {
		t.Fatalf("walking zdata.Silesia: %s", err)
	}

	for _, f := range files {
		f := f
		t.Run(f.name, func(t *testing.T) {
			enc, bits, err := Compress(f.data, nil)
			if err != nil {
				t.Fatalf("%s: Compress error %s", f.name, err)
			}
			dec, err := Decompress(enc, bits, len(f.data))
			if err != nil {
				t.Fatalf("%s: Decompress error %s", f.name, err)
			}
			if !bytes.Equal(dec, f.data) {
				t.Errorf("%s: round trip mismatch: got %d bytes, want %d",
					f.name, len(dec), len(f.data))
			}
		})
	}
}
