package dto

import (
	"strings"
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
)

// --- Request DTOs ---

// CreateMentorshipRequest represents mentorship creation data.
// New mentorships start unapproved and stay hidden from the public listing until approved.
type CreateMentorshipRequest struct {
	Title          string                `json:"title" binding:"required,max=200"`
	Description    string                `json:"description" binding:"required"`
	TargetAudience string                `json:"targetAudience" binding:"required"`
	StudyYear      string                `json:"studyYear" binding:"required"`
	Department     string                `json:"department" binding:"required"`
	FullName       string                `json:"fullName" binding:"required"`
	JobPosition    string                `json:"jobPosition" binding:"required"`
	CompanyName    string                `json:"companyName" binding:"required"`
	Date           string                `json:"date" binding:"required"`
	Limit          int                   `json:"limit" binding:"required,min=1,max=1000"`
	Mode           models.MentorshipMode `json:"mode" binding:"required,mentorshipmode"`
}

// ToModel converts the request into a new, unapproved mentorship
func (r *CreateMentorshipRequest) ToModel() *models.Mentorship {
	return &models.Mentorship{
		Title:          strings.TrimSpace(r.Title),
		Description:    r.Description,
		TargetAudience: r.TargetAudience,
		StudyYear:      r.StudyYear,
		Department:     r.Department,
		FullName:       r.FullName,
		JobPosition:    r.JobPosition,
		CompanyName:    r.CompanyName,
		Date:           r.Date,
		Limit:          r.Limit,
		Mode:           r.Mode,
		IsApproved:     false,
	}
}

// --- Response DTOs ---

// MentorshipResponse includes the derived occupancy fields
type MentorshipResponse struct {
	ID                  int64     `json:"id" example:"1"`
	Title               string    `json:"title" example:"Cracking system design interviews"`
	Description         string    `json:"description"`
	TargetAudience      string    `json:"targetAudience"`
	StudyYear           string    `json:"studyYear" example:"TY"`
	Department          string    `json:"department" example:"CSE"`
	FullName            string    `json:"fullName" example:"Jane Doe"`
	JobPosition         string    `json:"jobPosition"`
	CompanyName         string    `json:"companyName"`
	Date                string    `json:"date" example:"2026-05-01"`
	Limit               int       `json:"limit" example:"5"`
	Mode                string    `json:"mode" example:"Online"`
	IsApproved          bool      `json:"isApproved"`
	CreatedAt           time.Time `json:"createdAt"`
	CurrentParticipants int       `json:"currentParticipants" example:"2"`
	LimitParsed         string    `json:"limitParsed" example:"2/5"`
	IsFull              bool      `json:"isFull"`
}

// NewMentorshipResponse maps a mentorship onto its API shape
func NewMentorshipResponse(m *models.Mentorship) MentorshipResponse {
	return MentorshipResponse{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		TargetAudience:      m.TargetAudience,
		StudyYear:           m.StudyYear,
		Department:          m.Department,
		FullName:            m.FullName,
		JobPosition:         m.JobPosition,
		CompanyName:         m.CompanyName,
		Date:                m.Date,
		Limit:               m.Limit,
		Mode:                string(m.Mode),
		IsApproved:          m.IsApproved,
		CreatedAt:           m.CreatedAt,
		CurrentParticipants: m.ParticipantCount,
		LimitParsed:         m.Occupancy(),
		IsFull:              m.IsFull(),
	}
}

// NewMentorshipResponses maps a slice of mentorships
func NewMentorshipResponses(list []models.Mentorship) []MentorshipResponse {
	out := make([]MentorshipResponse, 0, len(list))
	for i := range list {
		out = append(out, NewMentorshipResponse(&list[i]))
	}
	return out
}

// ParticipantResponse is a participant entry with the student populated
type ParticipantResponse struct {
	ID            int64            `json:"id"`
	Justification string           `json:"justification"`
	AppliedAt     time.Time        `json:"appliedAt"`
	Student       *StudentSnapshot `json:"student,omitempty"`
	PRN           string           `json:"prn,omitempty" example:"72012345K"`
}

// NewParticipantResponses maps participants; entries without a loaded student keep only their own fields
func NewParticipantResponses(list []models.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(list))
	for _, p := range list {
		resp := ParticipantResponse{
			ID:            p.ID,
			Justification: p.Justification,
			AppliedAt:     p.AppliedAt,
		}
		if p.Student != nil {
			snapshot := NewStudentSnapshot(p.Student)
			resp.Student = &snapshot
			resp.PRN = p.Student.PRN
		}
		out = append(out, resp)
	}
	return out
}
