package models

import "time"

// Internship is an opportunity posted by an alumni; applications go through an external form
type Internship struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Mode             string    `json:"mode"`
	Location         string    `json:"location"`
	Duration         string    `json:"duration"`
	Stipend          string    `json:"stipend"`
	Limit            int       `json:"limit"`
	Description      string    `json:"description"`
	Prerequisites    string    `json:"prerequisites"`
	RequiredSkills   TextList  `json:"requiredSkills"`
	Deadline         string    `json:"deadline"`
	GoogleFormLink   string    `json:"googleFormLink"`
	AlumniID         *int64    `json:"alumniId,omitempty"`
	AlumniName       string    `json:"alumniName"`
	AlumniCompany    string    `json:"alumniCompany"`
	AlumniPosition   string    `json:"alumniPosition"`
	IsApproved       bool      `json:"isApproved"`
	IsMarkAsComplete bool      `json:"isMarkAsComplete"`
	CreatedAt        time.Time `json:"createdAt"`
}
