package models

import "time"

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// Subject is a course subject from the upstream catalogue, read only for
// display labels.
type Subject struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Teacher is an upstream user carrying the teacher role.
type Teacher struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DateKeyLayout is the canonical day-granularity key used across the
// calendar: bucket keys, holiday lookups and upstream date filters all
// share it.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as the canonical calendar day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
