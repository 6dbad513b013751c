package checksum

import (
	"os"
	"path/filepath"
	"testing"
)

// NIST test vectors for SHA-256.
const (
	digestABC   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	digestEmpty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func TestSHA256(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"known content", "abc", digestABC},
		{"empty file", "", digestEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "source.tar.gz")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := SHA256(path)
			if err != nil {
				t.Fatalf("SHA256 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("SHA256 = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSHA256Missing(t *testing.T) {
	if _, err := SHA256(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("SHA256 on a missing file succeeded, want error")
	}
}

func TestDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.tar.gz")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Digest(path); got != digestABC {
		t.Errorf("Digest = %q, want %q", got, digestABC)
	}
}

func TestDigestMissingReturnsSkip(t *testing.T) {
	if got := Digest(filepath.Join(t.TempDir(), "nope")); got != Skip {
		t.Errorf("Digest on a missing file = %q, want %q", got, Skip)
	}
}
