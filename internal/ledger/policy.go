package ledger

// Entitlement policy: pure functions of the current balance. The dashboard
// and the API must agree on these, so this is the only place the predicates
// live. A nil balance means "unknown" (e.g. the store failed) and is treated
// conservatively.

// RequiresWatermark reports whether exported cards must carry the watermark.
func RequiresWatermark(balance *int) bool {
	return balance == nil || *balance <= 0
}

// MayDownload reports whether a watermark-free download may proceed.
func MayDownload(balance *int) bool {
	return balance != nil && *balance > 0
}
