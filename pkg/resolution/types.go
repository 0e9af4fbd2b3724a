package resolution

import (
	"fmt"
	"time"
)

// Cadence is the tracking granularity of a resolution.
type Cadence string

const (
	CadenceDaily  Cadence = "DAILY"
	CadenceWeekly Cadence = "WEEKLY"
)

// Status is the lifecycle state of a resolution.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

// CheckInStatus is the recorded outcome for one period.
type CheckInStatus string

const (
	CheckInDone   CheckInStatus = "DONE"
	CheckInMissed CheckInStatus = "MISSED"
)

// Resolution is a goal defined with the STAR method: a situation to change,
// a task to own, a concrete action to take and the result to aim for.
type Resolution struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Title        string  `json:"title"`
	Situation    string  `json:"situation"`
	Task         string  `json:"task"`
	Action       string  `json:"action"`
	Result       string  `json:"result"`
	Cadence      Cadence `json:"cadence"`
	Status       Status  `json:"status"`
	ReminderTime string  `json:"reminder_time,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

// CheckIn records one status for one resolution for one calendar period.
// Date is always the normalized period start: UTC midnight for daily
// resolutions, the Monday UTC midnight for weekly ones.
type CheckIn struct {
	ResolutionID string        `json:"resolution_id"`
	Date         time.Time     `json:"date"`
	Status       CheckInStatus `json:"status"`
}

// Profile holds the contact details used for digest emails.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
}

func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case CadenceDaily, CadenceWeekly:
		return Cadence(s), nil
	}
	return "", fmt.Errorf("unknown cadence %q: must be DAILY or WEEKLY", s)
}

func ParseCheckInStatus(s string) (CheckInStatus, error) {
	switch CheckInStatus(s) {
	case CheckInDone, CheckInMissed:
		return CheckInStatus(s), nil
	}
	return "", fmt.Errorf("unknown check-in status %q: must be DONE or MISSED", s)
}
