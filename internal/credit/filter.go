package credit

import (
	"strings"
	"time"
)

// Matches reports whether the credit satisfies the filter. Free text is
// matched as a case-insensitive substring of the client names and as a plain
// substring of the id number. The date filter compares calendar days only.
func (f ListFilter) Matches(c *Credit) bool {
	if q := strings.TrimSpace(f.Search); q != "" {
		lower := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(c.ClientName), lower) &&
			!strings.Contains(strings.ToLower(c.ClientLastName), lower) &&
			!strings.Contains(c.IDNumber, q) {
			return false
		}
	}

	if f.Status != nil && c.Status != *f.Status {
		return false
	}

	if f.Date != nil && !sameDay(c.Date, *f.Date) {
		return false
	}

	return true
}

func sameDay(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}
