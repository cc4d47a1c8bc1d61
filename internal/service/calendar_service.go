package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhive/admin-gateway/internal/calendar"
	"github.com/tutorhive/admin-gateway/internal/dto"
	"github.com/tutorhive/admin-gateway/internal/models"
)

const monthCellSessionCap = 3

type sessionLister interface {
	ListSessions(ctx context.Context, token string, page, limit int) ([]models.Session, error)
}

type holidayLister interface {
	ListHolidays(ctx context.Context, token, startDate, endDate string) ([]models.PublicHoliday, error)
}

// CalendarService computes the month/week/day view models that back the
// admin calendar. It is stateless apart from a fetch generation counter used
// by the SPA to discard stale responses after rapid navigation.
type CalendarService struct {
	sessions  sessionLister
	holidays  holidayLister
	metrics   *MetricsService
	logger    *zap.Logger
	pageLimit int

	generation atomic.Uint64
	now        func() time.Time
}

// NewCalendarService constructs the service. pageLimit caps the single
// sessions page requested from the upstream.
func NewCalendarService(sessions sessionLister, holidays holidayLister, metrics *MetricsService, logger *zap.Logger, pageLimit int) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageLimit <= 0 {
		pageLimit = 1000
	}
	return &CalendarService{
		sessions:  sessions,
		holidays:  holidays,
		metrics:   metrics,
		logger:    logger,
		pageLimit: pageLimit,
		now:       time.Now,
	}
}

// calendarData is the joint result of one fetch generation. Either list may
// have degraded to empty without failing the fetch as a whole.
type calendarData struct {
	Sessions         []models.Session
	Holidays         []models.PublicHoliday
	SessionsDegraded bool
	HolidaysDegraded bool
	Generation       uint64
}

// fetch loads sessions and holidays for the visible range. The two upstream
// calls run concurrently and are awaited jointly; each degrades to an empty
// list on failure so the view still renders with partial data.
func (s *CalendarService) fetch(ctx context.Context, token string, r calendar.Range) calendarData {
	data := calendarData{Generation: s.generation.Add(1)}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		start := time.Now()
		sessions, err := s.sessions.ListSessions(ctx, token, 1, s.pageLimit)
		s.metrics.ObserveUpstreamRequest("list_sessions", time.Since(start), err != nil)
		if err != nil {
			s.logger.Warn("session fetch degraded to empty", zap.Error(err))
			data.SessionsDegraded = true
			return
		}
		data.Sessions = calendar.FilterSessionsInRange(sessions, r)
	}()

	go func() {
		defer wg.Done()
		start := time.Now()
		holidays, err := s.holidays.ListHolidays(ctx, token, models.DateKey(r.Start), models.DateKey(r.End))
		s.metrics.ObserveUpstreamRequest("list_holidays", time.Since(start), err != nil)
		if err != nil {
			s.logger.Warn("holiday fetch degraded to empty", zap.Error(err))
			data.HolidaysDegraded = true
			return
		}
		data.Holidays = holidays
	}()

	wg.Wait()
	return data
}

// View computes the calendar view model for reference and view. The second
// return value is response meta: the fetch generation plus degradation
// flags for the two read paths.
func (s *CalendarService) View(ctx context.Context, token string, reference time.Time, view calendar.View) (*dto.CalendarResponse, map[string]interface{}) {
	r := calendar.ComputeRange(reference, view)

	// The month grid's leading and trailing cells fall outside the month
	// range; fetch over the full grid so they render their own content. The
	// reported range stays the month itself.
	fetchRange := r
	switch view {
	case calendar.ViewWeek, calendar.ViewDay:
	default:
		fetchRange = calendar.MonthGridRange(reference)
	}
	data := s.fetch(ctx, token, fetchRange)

	resp := &dto.CalendarResponse{
		View:       string(view),
		Reference:  models.DateKey(reference),
		RangeStart: r.Start.Format(time.RFC3339),
		RangeEnd:   r.End.Format(time.RFC3339),
		Navigation: dto.CalendarNavigation{
			Previous: models.DateKey(calendar.Previous(reference, view)),
			Next:     models.DateKey(calendar.Next(reference, view)),
			Today:    models.DateKey(s.now()),
		},
	}

	switch view {
	case calendar.ViewWeek:
		resp.Title = weekTitle(r)
		resp.Week = s.buildWeek(reference, data)
	case calendar.ViewDay:
		resp.Title = reference.Format("Monday, January 2, 2006")
		resp.Day = s.buildDay(reference, data)
	default:
		resp.Title = reference.Format("January 2006")
		resp.Month = s.buildMonth(reference, data)
	}

	meta := map[string]interface{}{
		"generation":        data.Generation,
		"sessions_degraded": data.SessionsDegraded,
		"holidays_degraded": data.HolidaysDegraded,
	}
	return resp, meta
}

// DaySessions returns one day's sessions sorted by start time, backing the
// month view's "+N more" dialog.
func (s *CalendarService) DaySessions(ctx context.Context, token string, day time.Time) *dto.DaySessionsResponse {
	r := calendar.ComputeRange(day, calendar.ViewDay)
	data := s.fetch(ctx, token, r)

	sessions := calendar.BucketSessionsByDate(data.Sessions)[models.DateKey(day)]
	calendar.SortSessionsByStart(sessions)

	entries := make([]dto.SessionEntry, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, sessionEntry(session))
	}

	return &dto.DaySessionsResponse{
		Date:     models.DateKey(day),
		Weekday:  day.Format("Monday"),
		Count:    len(entries),
		Sessions: entries,
	}
}

func (s *CalendarService) buildMonth(reference time.Time, data calendarData) *dto.MonthView {
	buckets := calendar.BucketSessionsByDate(data.Sessions)
	holidays := calendar.HolidaysByDate(data.Holidays)
	todayKey := models.DateKey(s.now())
	month := reference.Month()

	days := calendar.MonthGridDays(reference)
	weeks := make([][]dto.MonthCell, 0, len(days)/7)
	for i := 0; i < len(days); i += 7 {
		week := make([]dto.MonthCell, 0, 7)
		for _, day := range days[i : i+7] {
			key := models.DateKey(day)
			daySessions := buckets[key]
			calendar.SortSessionsByStart(daySessions)

			visible := daySessions
			if len(visible) > monthCellSessionCap {
				visible = visible[:monthCellSessionCap]
			}
			entries := make([]dto.SessionEntry, 0, len(visible))
			for _, session := range visible {
				entries = append(entries, sessionEntry(session))
			}

			overflow := len(daySessions) - monthCellSessionCap
			if overflow < 0 {
				overflow = 0
			}

			week = append(week, dto.MonthCell{
				Date:     key,
				Day:      day.Day(),
				InMonth:  day.Month() == month,
				Today:    key == todayKey,
				Holiday:  holidayInfo(holidays, key),
				Sessions: entries,
				Overflow: overflow,
				Total:    len(daySessions),
			})
		}
		weeks = append(weeks, week)
	}
	return &dto.MonthView{Weeks: weeks}
}

func (s *CalendarService) buildWeek(reference time.Time, data calendarData) *dto.WeekView {
	buckets := calendar.BucketSessionsByDate(data.Sessions)
	holidays := calendar.HolidaysByDate(data.Holidays)
	todayKey := models.DateKey(s.now())

	columns := make([]dto.WeekColumn, 0, 7)
	for _, day := range calendar.WeekDays(reference) {
		key := models.DateKey(day)
		columns = append(columns, dto.WeekColumn{
			Date:    key,
			Weekday: day.Format("Mon"),
			Day:     day.Day(),
			Today:   key == todayKey,
			Holiday: holidayInfo(holidays, key),
			Hours:   hourSlots(day, buckets[key]),
		})
	}
	return &dto.WeekView{Days: columns}
}

func (s *CalendarService) buildDay(reference time.Time, data calendarData) *dto.DayView {
	key := models.DateKey(reference)
	sessions := calendar.BucketSessionsByDate(data.Sessions)[key]
	calendar.SortSessionsByStart(sessions)
	holidays := calendar.HolidaysByDate(data.Holidays)

	return &dto.DayView{
		Date:    key,
		Weekday: reference.Format("Monday"),
		Today:   key == models.DateKey(s.now()),
		Holiday: holidayInfo(holidays, key),
		Hours:   hourSlots(reference, sessions),
	}
}

func hourSlots(day time.Time, sessions []models.Session) []dto.HourSlot {
	slots := make([]dto.HourSlot, 0, 24)
	for hour := 0; hour < 24; hour++ {
		hourSessions := calendar.SessionsForHour(day, hour, sessions)
		entries := make([]dto.SessionEntry, 0, len(hourSessions))
		for _, session := range hourSessions {
			entries = append(entries, sessionEntry(session))
		}
		slots = append(slots, dto.HourSlot{
			Hour:     hour,
			Label:    hourLabel(hour),
			Sessions: entries,
		})
	}
	return slots
}

func hourLabel(hour int) string {
	return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("3 PM")
}

func sessionEntry(s models.Session) dto.SessionEntry {
	title := s.Title
	if title == "" {
		title = "Session"
	}
	return dto.SessionEntry{
		ID:        s.ID,
		Title:     title,
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		TimeLabel: s.StartTime.Format("3:04 PM") + " - " + s.EndTime.Format("3:04 PM"),
		Status:    string(s.Status),
		Subject:   s.Subject.Label(),
		Teacher:   s.Teacher.Label(),
		Student:   s.Student.Label(),
	}
}

func holidayInfo(holidays map[string]models.PublicHoliday, key string) *dto.HolidayInfo {
	h, ok := holidays[key]
	if !ok {
		return nil
	}
	return &dto.HolidayInfo{
		ID:          h.ID,
		Name:        h.Name,
		Date:        models.DateKey(h.Date),
		Description: h.Description,
		IsActive:    h.IsActive,
	}
}

func weekTitle(r calendar.Range) string {
	return "Week of " + r.Start.Format("Jan 2") + " - " + r.End.Format("Jan 2, 2006")
}
