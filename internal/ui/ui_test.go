package ui

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrinters(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{
			name:  "usage",
			print: func(b *bytes.Buffer) { PrintUsage(b, "bin2c <path and filename> [flags]") },
			want:  "Usage: bin2c <path and filename> [flags]\n",
		},
		{
			name:  "read",
			print: func(b *bytes.Buffer) { PrintRead(b, 3, "a/b/name.bin") },
			want:  "3 read from file a/b/name.bin\n",
		},
		{
			name:  "error",
			print: func(b *bytes.Buffer) { PrintError(b, errors.New("Unable to read file!")) },
			want:  "ERROR Unable to read file!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
