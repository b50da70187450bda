package dto

import (
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
)

// CreateInternshipRequest represents internship creation data
type CreateInternshipRequest struct {
	Title          string          `json:"title" binding:"required,max=200"`
	Company        string          `json:"company" binding:"required"`
	Mode           string          `json:"mode" binding:"required"`
	Location       string          `json:"location"`
	Duration       string          `json:"duration" binding:"required"`
	Stipend        string          `json:"stipend" binding:"required"`
	Limit          int             `json:"limit" binding:"required,min=1"`
	Description    string          `json:"description" binding:"required"`
	Prerequisites  string          `json:"prerequisites"`
	RequiredSkills models.TextList `json:"requiredSkills" swaggertype:"array,string"`
	Deadline       string          `json:"deadline" binding:"required"`
	GoogleFormLink string          `json:"googleFormLink" binding:"required,url"`
	AlumniID       *int64          `json:"alumniId" binding:"omitempty,gt=0"`
	AlumniName     string          `json:"alumniName" binding:"required"`
	AlumniCompany  string          `json:"alumniCompany" binding:"required"`
	AlumniPosition string          `json:"alumniPosition" binding:"required"`
	IsApproved     bool            `json:"isApproved"`
}

// ToModel converts the request into a new internship
func (r *CreateInternshipRequest) ToModel() *models.Internship {
	location := r.Location
	if location == "" {
		location = "Remote"
	}
	return &models.Internship{
		Title:          r.Title,
		Company:        r.Company,
		Mode:           r.Mode,
		Location:       location,
		Duration:       r.Duration,
		Stipend:        r.Stipend,
		Limit:          r.Limit,
		Description:    r.Description,
		Prerequisites:  r.Prerequisites,
		RequiredSkills: r.RequiredSkills,
		Deadline:       r.Deadline,
		GoogleFormLink: r.GoogleFormLink,
		AlumniID:       r.AlumniID,
		AlumniName:     r.AlumniName,
		AlumniCompany:  r.AlumniCompany,
		AlumniPosition: r.AlumniPosition,
		IsApproved:     r.IsApproved,
	}
}

// InternshipResponse is the API shape of an internship
type InternshipResponse struct {
	ID               int64     `json:"id" example:"1"`
	Title            string    `json:"title" example:"Backend intern"`
	Company          string    `json:"company" example:"Acme"`
	Mode             string    `json:"mode" example:"Remote"`
	Location         string    `json:"location" example:"Remote"`
	Duration         string    `json:"duration" example:"3 months"`
	Stipend          string    `json:"stipend" example:"10000"`
	Limit            int       `json:"limit" example:"4"`
	Description      string    `json:"description"`
	Prerequisites    string    `json:"prerequisites"`
	RequiredSkills   []string  `json:"requiredSkills"`
	Deadline         string    `json:"deadline" example:"2026-06-30"`
	GoogleFormLink   string    `json:"googleFormLink"`
	AlumniID         *int64    `json:"alumniId,omitempty"`
	AlumniName       string    `json:"alumniName"`
	AlumniCompany    string    `json:"alumniCompany"`
	AlumniPosition   string    `json:"alumniPosition"`
	IsApproved       bool      `json:"isApproved"`
	IsMarkAsComplete bool      `json:"isMarkAsComplete"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewInternshipResponse maps an internship onto its API shape
func NewInternshipResponse(i *models.Internship) InternshipResponse {
	return InternshipResponse{
		ID:               i.ID,
		Title:            i.Title,
		Company:          i.Company,
		Mode:             i.Mode,
		Location:         i.Location,
		Duration:         i.Duration,
		Stipend:          i.Stipend,
		Limit:            i.Limit,
		Description:      i.Description,
		Prerequisites:    i.Prerequisites,
		RequiredSkills:   nonNil(i.RequiredSkills),
		Deadline:         i.Deadline,
		GoogleFormLink:   i.GoogleFormLink,
		AlumniID:         i.AlumniID,
		AlumniName:       i.AlumniName,
		AlumniCompany:    i.AlumniCompany,
		AlumniPosition:   i.AlumniPosition,
		IsApproved:       i.IsApproved,
		IsMarkAsComplete: i.IsMarkAsComplete,
		CreatedAt:        i.CreatedAt,
	}
}

// NewInternshipResponses maps a slice of internships
func NewInternshipResponses(list []models.Internship) []InternshipResponse {
	out := make([]InternshipResponse, 0, len(list))
	for i := range list {
		out = append(out, NewInternshipResponse(&list[i]))
	}
	return out
}

// InternshipApplyResponse points the student at the external application form
type InternshipApplyResponse struct {
	GoogleFormLink string `json:"googleFormLink" example:"https://forms.gle/abc"`
	Title          string `json:"title" example:"Backend intern"`
	Company        string `json:"company" example:"Acme"`
}
