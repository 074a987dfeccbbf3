// Package curve provides the Ed25519 curve-point test used to validate
// Program Derived Addresses. A PDA is, by construction, a 32-byte value
// that must *not* decompress to a point on the curve; this package is
// the one place that decision is made.
package curve

import "filippo.io/edwards25519"

// IsOnCurve reports whether b decompresses to a valid Ed25519 curve
// point. b must be exactly 32 bytes; any other length is treated as
// "not a point" rather than a panic.
//
// This must be a true point decompression, not a heuristic - a PDA
// search that skips this check can produce an address that collides
// with a real keypair account.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}

	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
