package util

import "fmt"

// DefaultLogMaxLen is the default maximum length for truncated log output (1KB).
// The full payload of a webhook event is kept in its database record.
const DefaultLogMaxLen = 1024

// TruncateLog truncates long strings for logging, keeping log growth under
// control without losing the head of the payload.
func TruncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + fmt.Sprintf("... [truncated, %d bytes total]", len(s))
}

// TruncateBytes is a convenience wrapper for TruncateLog that accepts []byte
// and uses DefaultLogMaxLen.
func TruncateBytes(b []byte) string {
	return TruncateLog(string(b), DefaultLogMaxLen)
}
