package dto

// HolidayInfo is the holiday overlay attached to calendar day cells and
// returned from holiday mutations.
type HolidayInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// SessionEntry is a single rendered session.
type SessionEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	TimeLabel string `json:"time_label"`
	Status    string `json:"status"`
	Subject   string `json:"subject,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	Student   string `json:"student,omitempty"`
}

// MonthCell is one day cell of the month grid. Sessions holds at most three
// entries; Overflow counts the rest, backing the SPA's "+N more" control.
type MonthCell struct {
	Date     string         `json:"date"`
	Day      int            `json:"day"`
	InMonth  bool           `json:"in_month"`
	Today    bool           `json:"today"`
	Holiday  *HolidayInfo   `json:"holiday,omitempty"`
	Sessions []SessionEntry `json:"sessions"`
	Overflow int            `json:"overflow"`
	Total    int            `json:"total"`
}

// MonthView is the six-week month grid.
type MonthView struct {
	Weeks [][]MonthCell `json:"weeks"`
}

// HourSlot is one hour row of a week column or day view.
type HourSlot struct {
	Hour     int            `json:"hour"`
	Label    string         `json:"label"`
	Sessions []SessionEntry `json:"sessions"`
}

// WeekColumn is one day column of the week grid.
type WeekColumn struct {
	Date    string       `json:"date"`
	Weekday string       `json:"weekday"`
	Day     int          `json:"day"`
	Today   bool         `json:"today"`
	Holiday *HolidayInfo `json:"holiday,omitempty"`
	Hours   []HourSlot   `json:"hours"`
}

// WeekView is the 7x24 week grid.
type WeekView struct {
	Days []WeekColumn `json:"days"`
}

// DayView is the 24-row single-day grid.
type DayView struct {
	Date    string       `json:"date"`
	Weekday string       `json:"weekday"`
	Today   bool         `json:"today"`
	Holiday *HolidayInfo `json:"holiday,omitempty"`
	Hours   []HourSlot   `json:"hours"`
}

// CalendarNavigation carries the reference dates the SPA should use for the
// previous/next/today controls of the current view.
type CalendarNavigation struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Today    string `json:"today"`
}

// CalendarResponse is the computed view model for one calendar request.
// Exactly one of Month, Week or Day is set, matching View.
type CalendarResponse struct {
	View       string             `json:"view"`
	Reference  string             `json:"reference"`
	Title      string             `json:"title"`
	RangeStart string             `json:"range_start"`
	RangeEnd   string             `json:"range_end"`
	Navigation CalendarNavigation `json:"navigation"`
	Month      *MonthView         `json:"month,omitempty"`
	Week       *WeekView          `json:"week,omitempty"`
	Day        *DayView           `json:"day,omitempty"`
}

// DaySessionsResponse lists a single day's sessions sorted by start time,
// backing the month view's overflow dialog.
type DaySessionsResponse struct {
	Date     string         `json:"date"`
	Weekday  string         `json:"weekday"`
	Count    int            `json:"count"`
	Sessions []SessionEntry `json:"sessions"`
}
