package pkg

import "time"

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ParseDate converts a validated "2006-01-02" string to *time.Time.
// An empty or malformed value yields nil; format validation belongs to the
// request binding, not here.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
