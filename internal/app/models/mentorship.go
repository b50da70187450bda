package models

import (
	"fmt"
	"time"
)

// Mentorship is an offering sponsored by an alumni.
// ParticipantCount is filled by the repository; Participants only when explicitly loaded.
type Mentorship struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TargetAudience string         `json:"targetAudience"`
	StudyYear      string         `json:"studyYear"`
	Department     string         `json:"department"`
	FullName       string         `json:"fullName"`
	JobPosition    string         `json:"jobPosition"`
	CompanyName    string         `json:"companyName"`
	Date           string         `json:"date"`
	Limit          int            `json:"limit"`
	Mode           MentorshipMode `json:"mode"`
	IsApproved     bool           `json:"isApproved"`
	CreatedAt      time.Time      `json:"createdAt"`

	ParticipantCount int           `json:"participantCount"`
	Participants     []Participant `json:"participants,omitempty"`
}

// IsFull reports whether no seat is left
func (m *Mentorship) IsFull() bool {
	return m.ParticipantCount >= m.Limit
}

// Occupancy renders "current/max"
func (m *Mentorship) Occupancy() string {
	return FormatOccupancy(m.ParticipantCount, m.Limit)
}

// FormatOccupancy renders a "current/max" occupancy string
func FormatOccupancy(current, max int) string {
	return fmt.Sprintf("%d/%d", current, max)
}

// Participant is a student enrolled in a mentorship. It is only created by the apply workflow.
type Participant struct {
	ID            int64     `json:"id"`
	MentorshipID  int64     `json:"mentorshipId"`
	StudentID     int64     `json:"studentId"`
	Justification string    `json:"justification"`
	AppliedAt     time.Time `json:"appliedAt"`

	Student *Student `json:"student,omitempty"`
}
