// Package checksum computes source integrity digests for build descriptors.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
)

// Skip is the makepkg sentinel for an intentionally omitted integrity check.
const Skip = "SKIP"

// SHA256 returns the hex-encoded SHA-256 digest of the file at path.
func SHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Digest returns the SHA-256 digest of the file at path, or Skip when the
// file cannot be read. A failed digest degrades the generated descriptor
// instead of aborting the run.
func Digest(path string) string {
	sum, err := SHA256(path)
	if err != nil {
		log.Printf("checksum: %v; using %s", err, Skip)
		return Skip
	}
	return sum
}
