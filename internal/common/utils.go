// Package common holds small helpers shared across the CLI actions.
package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// ContentHash computes the SHA-256 hash of content as a hex string.
// Used for scan ids: the same URL always maps to the same id.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// FileSHA256 streams a file through SHA-256 and returns the hex digest.
// Recorded per run so a manifest can be tied back to the exact input
// table it was produced from.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
