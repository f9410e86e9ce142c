// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key returns the cache key for a (source, fileID) pair: the hex-encoded
// SHA-256 of the file id, a NUL separator, and the source bytes. The
// separator keeps "a"+"bc" from colliding with "ab"+"c".
func Key(source []byte, fileID string) string {
	h := sha256.New()
	h.Write([]byte(fileID))
	h.Write([]byte{0})
	h.Write(source)
	return hex.EncodeToString(h.Sum(nil))
}
