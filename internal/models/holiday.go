package models

import "time"

// PublicHoliday is an admin-managed calendar day on which the upstream
// platform refuses new session bookings. Inactive holidays are retained but
// no longer block bookings.
type PublicHoliday struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
}
