package deprecation

var (
	// deprecatedKeys maps config keys that are no longer read to the key
	// that replaced them, if any
	deprecatedKeys = map[string]string{
		"token":   "pagerduty_token",
		"teams":   "pagerduty_teams",
		"weights": "",
	}
)

// Deprecated returns true if the key is deprecated
func Deprecated(k string) bool {
	_, ok := deprecatedKeys[k]
	return ok
}

// Replacement returns the key that replaced a deprecated key, and false if
// the key is not deprecated or has no replacement
func Replacement(k string) (string, bool) {
	r, ok := deprecatedKeys[k]
	if !ok || r == "" {
		return "", false
	}
	return r, true
}
