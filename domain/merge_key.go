package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// MergeCacheKey hashes the ordered list of (videoName, mediaUrl, startMs,
// endMs) tuples taking part in a merge. Identical inputs in identical order
// always produce the same key; any marker drift, media change (a regenerated
// participant gets a new URL), participant change or reordering produces a
// different one, which is what invalidates a cached merge URL.
func MergeCacheKey(windows []ClipWindow) string {
	var b strings.Builder
	for _, w := range windows {
		fmt.Fprintf(&b, "%s:%s:%d:%d;", w.VideoName, w.MediaURL, w.StartMs, w.EndMs)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
