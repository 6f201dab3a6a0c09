// Package schedule holds the day-by-day trip planning state: a date range
// expanded into calendar days, each day carrying an ordered list of picked
// attractions.
package schedule

import (
	"gotham/pkg/utils"
)

// Attraction is the planning-side view of a catalog entry. Only these fields
// are carried in the draft; full detail is always re-joined from the catalog.
type Attraction struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type Day struct {
	Date  string       `json:"date"`
	Items []Attraction `json:"items"`
}

type State struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Days           []Day  `json:"days"`
	ActiveDayIndex int    `json:"active_day_index"`
}

// SetDateRange regenerates the day list from start to end inclusive. Any
// previously assigned attractions are discarded. An unparseable date or
// end < start is not an error: it collapses the range to an empty day list.
func (s *State) SetDateRange(start, end string) {
	s.StartDate = start
	s.EndDate = end
	s.ActiveDayIndex = 0

	dates := utils.DaysInRange(start, end)
	s.Days = make([]Day, 0, len(dates))
	for _, d := range dates {
		s.Days = append(s.Days, Day{Date: d, Items: []Attraction{}})
	}
}

func (s *State) SetActiveDay(index int) error {
	if index < 0 || index >= len(s.Days) {
		return utils.ErrDayOutOfRange
	}
	s.ActiveDayIndex = index
	return nil
}

// AddToActiveDay appends the attraction to the active day. Adding an id the
// day already holds is an idempotent no-op.
func (s *State) AddToActiveDay(a Attraction) error {
	if len(s.Days) == 0 {
		return utils.ErrScheduleEmpty
	}
	if s.ActiveDayIndex < 0 || s.ActiveDayIndex >= len(s.Days) {
		// A hydrated draft can carry a stale index; treat it like a bad caller.
		return utils.ErrDayOutOfRange
	}

	day := &s.Days[s.ActiveDayIndex]
	for _, item := range day.Items {
		if item.ID == a.ID {
			return nil
		}
	}
	day.Items = append(day.Items, a)
	return nil
}

// RemoveFromDay drops the matching attraction id from the day. A missing id
// is a no-op; at most one entry can match.
func (s *State) RemoveFromDay(dayIndex int, attractionID string) error {
	if dayIndex < 0 || dayIndex >= len(s.Days) {
		return utils.ErrDayOutOfRange
	}

	day := &s.Days[dayIndex]
	for i, item := range day.Items {
		if item.ID == attractionID {
			day.Items = append(day.Items[:i], day.Items[i+1:]...)
			break
		}
	}
	return nil
}

func (s *State) Reset() {
	s.StartDate = ""
	s.EndDate = ""
	s.Days = nil
	s.ActiveDayIndex = 0
}

// HasItems reports whether any day holds at least one attraction. Saving a
// trip requires both dates and at least one item; callers check this before
// handing the draft to the persistence layer.
func (s *State) HasItems() bool {
	for _, d := range s.Days {
		if len(d.Items) > 0 {
			return true
		}
	}
	return false
}
