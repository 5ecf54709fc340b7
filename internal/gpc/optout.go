package gpc

import "strings"

// optOutKeywords are URL fragments that suggest a privacy rights or opt-out
// page. Tested as case-insensitive substrings of the full URL.
var optOutKeywords = []string{
	"privacy",
	"opt-out",
	"optout",
	"do-not-sell",
	"ccpa",
	"rights",
	"data-request",
	"gdpr",
}

// LooksLikeOptOutURL reports whether a URL appears to be a privacy opt-out
// or rights page. This is a heuristic used to surface autofill assistance;
// misses are fine.
func LooksLikeOptOutURL(url string) bool {
	lower := strings.ToLower(url)

	for _, kw := range optOutKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
