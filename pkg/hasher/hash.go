package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SumBytes returns the hex encoded SHA-256 of b.
func SumBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// ETag returns a strong entity tag for the given response body.
func ETag(body []byte) string {
	return fmt.Sprintf("%q", SumBytes(body))
}

// MatchETag reports whether an If-None-Match header value, possibly a comma
// separated list, matches etag. Weak validators compare equal.
func MatchETag(ifNoneMatch, etag string) bool {
	for _, tag := range strings.Split(ifNoneMatch, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}
