package site

import "github.com/inful/mdfp"

// Fingerprint returns a stable content fingerprint for a rendered page.
func Fingerprint(page string) string {
	return mdfp.CalculateFingerprintFromParts("", page)
}
