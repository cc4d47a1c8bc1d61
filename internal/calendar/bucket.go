package calendar

import (
	"sort"
	"time"

	"github.com/tutorhive/admin-gateway/internal/models"
)

// Overlaps reports whether [aStart, aEnd] intersects [bStart, bEnd].
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FilterSessionsInRange keeps sessions whose interval intersects r.
func FilterSessionsInRange(sessions []models.Session, r Range) []models.Session {
	filtered := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if Overlaps(s.StartTime, s.EndTime, r.Start, r.End) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// BucketSessionsByDate groups sessions by the calendar day of their start
// time. Every session lands in exactly one bucket.
func BucketSessionsByDate(sessions []models.Session) map[string][]models.Session {
	buckets := make(map[string][]models.Session)
	for _, s := range sessions {
		key := models.DateKey(s.StartTime)
		buckets[key] = append(buckets[key], s)
	}
	return buckets
}

// HolidaysByDate maps each calendar day to at most one holiday. When the
// upstream returns duplicates for a day, the first wins.
func HolidaysByDate(holidays []models.PublicHoliday) map[string]models.PublicHoliday {
	byDate := make(map[string]models.PublicHoliday, len(holidays))
	for _, h := range holidays {
		key := models.DateKey(h.Date)
		if _, exists := byDate[key]; !exists {
			byDate[key] = h
		}
	}
	return byDate
}

// HolidayForDate returns the first holiday falling on day, or nil.
func HolidayForDate(holidays []models.PublicHoliday, day time.Time) *models.PublicHoliday {
	key := models.DateKey(day)
	for i := range holidays {
		if models.DateKey(holidays[i].Date) == key {
			return &holidays[i]
		}
	}
	return nil
}

// SessionsForHour selects the sessions of a day that belong to the one-hour
// window starting at hour. Selection is two-stage: a broad interval-overlap
// pass against [hour:00, hour+1:00), then a narrow filter keeping only
// sessions that actually start in that hour. A session spanning several
// hours therefore renders once, in its start hour's cell.
func SessionsForHour(day time.Time, hour int, sessions []models.Session) []models.Session {
	hourStart := StartOfDay(day).Add(time.Duration(hour) * time.Hour)
	hourEnd := hourStart.Add(time.Hour)

	selected := make([]models.Session, 0)
	for _, s := range sessions {
		startsInHour := !s.StartTime.Before(hourStart) && s.StartTime.Before(hourEnd)
		endsInHour := s.EndTime.After(hourStart) && !s.EndTime.After(hourEnd)
		spansHour := !s.StartTime.After(hourStart) && !s.EndTime.Before(hourEnd)
		if !startsInHour && !endsInHour && !spansHour {
			continue
		}
		if s.StartTime.Hour() != hour || models.DateKey(s.StartTime) != models.DateKey(day) {
			continue
		}
		selected = append(selected, s)
	}
	return selected
}

// SortSessionsByStart orders sessions ascending by start time, in place.
func SortSessionsByStart(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
}

// MonthGridDays lists the 42 days of the six-week grid whose first cell is
// the Sunday on or before the first of reference's month.
func MonthGridDays(reference time.Time) []time.Time {
	first := StartOfWeek(StartOfMonth(reference))
	days := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// WeekDays lists the seven days of the week containing reference.
func WeekDays(reference time.Time) []time.Time {
	start := StartOfWeek(reference)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
