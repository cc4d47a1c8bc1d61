package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// SessionStatus enumerates the lifecycle states of a tutoring session.
type SessionStatus string

const (
	SessionRequested SessionStatus = "requested"
	SessionAccepted  SessionStatus = "accepted"
	SessionScheduled SessionStatus = "scheduled"
	SessionOngoing   SessionStatus = "ongoing"
	SessionCompleted SessionStatus = "completed"
	SessionRejected  SessionStatus = "rejected"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is a scheduled one-to-one teaching event owned by the upstream API.
// The gateway only reads sessions for display within a visible date range.
type Session struct {
	ID        string        `json:"_id"`
	Title     string        `json:"title,omitempty"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    SessionStatus `json:"status"`
	Subject   *EntityRef    `json:"subject,omitempty"`
	Teacher   *EntityRef    `json:"teacher,omitempty"`
	Student   *EntityRef    `json:"student,omitempty"`
}

// EntityRef is a reference to a related record. The upstream serialises these
// either as a bare ID string or as a populated object, depending on whether
// the query populated the relation.
type EntityRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.ID = id
		r.Name = ""
		return nil
	}

	type ref EntityRef
	var obj ref
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = EntityRef(obj)
	return nil
}

// Label returns the display name, falling back to the raw ID.
func (r *EntityRef) Label() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}
