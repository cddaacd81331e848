package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMarshal_CanonicalOrder(t *testing.T) {
	st := Stats{Path: "/tmp/a.txt", Bytes: 12, Lines: 3, Words: 4}
	b1, err := Marshal(st)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b2, err := Marshal(st)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("not rewrite-stable\nfirst:\n%s\nsecond:\n%s", string(b1), string(b2))
	}
	want := "path: /tmp/a.txt\nbytes: 12\nlines: 3\nwords: 4\n"
	if string(b1) != want {
		t.Fatalf("unexpected canonical output\nwant:\n%s\ngot:\n%s", want, string(b1))
	}
}

func TestWriteCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out", "stats.yaml")
	if err := Write(dest, Stats{Path: "x", Bytes: 0, Lines: 0, Words: 0}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "path: x\nbytes: 0\nlines: 0\nwords: 0\n" {
		t.Fatalf("unexpected content:\n%s", string(b))
	}
}

func TestTextFourLines(t *testing.T) {
	got := Text(Stats{Path: "a", Bytes: 1, Lines: 2, Words: 3})
	want := "Path: a\nBytes: 1\nLines: 2\nWords: 3\n"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}
