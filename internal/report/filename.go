package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// storeToken turns a human store name into a file-name token: every run
// of non-alphanumeric characters collapses to a single underscore, with
// leading and trailing underscores trimmed.
func storeToken(name string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(name, "_"), "_")
}

// reportFileName builds the canonical base name for a generated report,
// keyed on the store and the submission date (falling back to now).
func reportFileName(storeName string, submittedAt *time.Time, now time.Time) string {
	when := now
	if submittedAt != nil {
		when = *submittedAt
	}
	return fmt.Sprintf("Audit_%s_%s", storeToken(storeName), dateToken(when))
}

// resolveStoreName picks the human store name out of the candidate
// fields: the first non-empty candidate that does not look like a UUID
// or a bare numeric id wins. If every candidate looks machine-generated,
// the first non-empty one is used anyway.
func resolveStoreName(candidates []string) string {
	var firstNonEmpty string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if firstNonEmpty == "" {
			firstNonEmpty = c
		}
		if !looksLikeIdentifier(c) {
			return c
		}
	}
	return firstNonEmpty
}

func looksLikeIdentifier(s string) bool {
	if _, err := uuid.Parse(s); err == nil {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
