package validators

import "strings"

// IsPlausibleEmail checks that the address at least looks like one: an "@"
// with text on both sides. Anything stricter rejects real addresses the
// contact form should accept.
func IsPlausibleEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}
