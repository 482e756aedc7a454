//go:build !windows

package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/xll-gen/bin2c/internal/errkind"
)

func TestWriteAtomic_FailedRenameKeepsDestination(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "name.c")

	// A non-empty directory at the destination makes the final rename fail.
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(out, "keep.txt")
	if err := os.WriteFile(keep, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteSource(out, "name", []byte{0x00, 0x01, 0xff}, Options{Atomic: true})
	if !errors.Is(err, errkind.ErrFileAccess) {
		t.Fatalf("error = %v, want file access", err)
	}

	got, err := os.ReadFile(keep)
	if err != nil {
		t.Fatalf("existing destination content lost: %v", err)
	}
	if string(got) != "old" {
		t.Errorf("existing destination content = %q, want %q", got, "old")
	}
	if entries, _ := os.ReadDir(out); len(entries) != 1 {
		t.Errorf("destination directory has %d entries, want 1", len(entries))
	}

	var names []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"name.c"}, names); diff != "" {
		t.Errorf("temporary file left behind (-want +got):\n%s", diff)
	}
}

func TestWriteAtomic_Symlink(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"existing target", true},
		{"dangling link", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			work := filepath.Join(root, "work")
			if err := os.Mkdir(work, 0755); err != nil {
				t.Fatal(err)
			}
			target := filepath.Join(root, "target.c")
			if tt.exists {
				if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
					t.Fatal(err)
				}
			}
			link := filepath.Join(work, "link.c")
			if err := os.Symlink("../target.c", link); err != nil {
				t.Fatal(err)
			}

			data := []byte{0xca, 0xfe}
			if err := WriteSource(link, "link", data, Options{Atomic: true}); err != nil {
				t.Fatalf("WriteSource failed: %v", err)
			}

			fi, err := os.Lstat(link)
			if err != nil {
				t.Fatal(err)
			}
			if fi.Mode()&os.ModeSymlink == 0 {
				t.Errorf("link.c was replaced by a regular file")
			}

			got, err := os.ReadFile(target)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(render(t, "link", data), string(got)); diff != "" {
				t.Errorf("target content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
