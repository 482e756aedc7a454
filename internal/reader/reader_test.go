package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/xll-gen/bin2c/internal/errkind"
)

func TestReadAll(t *testing.T) {
	dir := t.TempDir()

	big := make([]byte, 70000)
	for i := range big {
		big[i] = byte(i * 7)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"three bytes", []byte{0x00, 0x01, 0xff}},
		{"empty", []byte{}},
		{"large", big},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".bin")
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatal(err)
			}

			got, err := ReadAll(path)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(got) != len(tt.data) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.data))
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("content mismatch")
			}
		})
	}
}

func TestReadAll_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "does-not-exist.bin")},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errkind.ErrFileAccess) {
				t.Errorf("error kind = %v, want file access", err)
			}
			if got, want := err.Error(), "Unable to read file!"; got != want {
				t.Errorf("message = %q, want %q", got, want)
			}
		})
	}
}
