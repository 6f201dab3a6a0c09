// utils/dateutil.go
package utils

import "time"

// Calendar dates travel through the system as ISO strings (2006-01-02).
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysInRange expands [start, end] inclusive into one ISO date per calendar day.
// Unparseable dates or end < start yield an empty slice.
func DaysInRange(start, end string) []string {
	if start == "" || end == "" {
		return nil
	}
	s, err := ParseDate(start)
	if err != nil {
		return nil
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil
	}
	if e.Before(s) {
		return nil
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
