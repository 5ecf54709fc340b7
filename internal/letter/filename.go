package letter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

const (
	maxFilenameNameLen  = 30
	maxFilenameTypesLen = 20
)

// Filename builds a deterministic, filesystem-safe PDF filename from the
// recipient name, the covered request-type codes, and today's date.
func Filename(brokerName string, types []RequestType) string {
	return FilenameAt(brokerName, types, time.Now())
}

// FilenameAt is Filename with an explicit date, for deterministic output.
func FilenameAt(brokerName string, types []RequestType, t time.Time) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(brokerName, "_")
	if len(sanitized) > maxFilenameNameLen {
		sanitized = sanitized[:maxFilenameNameLen]
	}

	codes := make([]string, len(types))
	for i, rt := range types {
		codes[i] = string(rt)
	}

	joined := strings.Join(codes, "-")
	if len(joined) > maxFilenameTypesLen {
		joined = joined[:maxFilenameTypesLen]
	}

	return fmt.Sprintf("MCDPA_%s_%s_%s.pdf", sanitized, joined, t.Format("2006-01-02"))
}
