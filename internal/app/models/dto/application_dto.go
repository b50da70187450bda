package dto

import "github.com/networknexus/nexushub/internal/app/models"

// ApplyMentorshipRequest is the body of a mentorship application
type ApplyMentorshipRequest struct {
	PRN           string `json:"prn" binding:"required,prn"`
	Justification string `json:"justification" binding:"required,max=2000"`
}

// StudentSnapshot holds the profile fields used to auto-fill the application form
type StudentSnapshot struct {
	FullName   string `json:"fullName" example:"Rahul Patil"`
	Department string `json:"department" example:"CSE"`
	StudyYear  string `json:"studyYear" example:"TY"`
	Phone      string `json:"phone" example:"9876543210"`
	Email      string `json:"email" example:"rahul@example.com"`
}

// NewStudentSnapshot maps a student onto its auto-fill shape
func NewStudentSnapshot(s *models.Student) StudentSnapshot {
	return StudentSnapshot{
		FullName:   s.FullName,
		Department: s.Department,
		StudyYear:  s.StudyYear,
		Phone:      s.PhoneNumber,
		Email:      s.Email,
	}
}

// MentorshipOccupancy is the mentorship part of an application result
type MentorshipOccupancy struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Cracking system design interviews"`
	Limit string `json:"limit" example:"2/5"`
}

// ApplicationResponse is returned after a successful application
type ApplicationResponse struct {
	Student    StudentSnapshot     `json:"student"`
	Mentorship MentorshipOccupancy `json:"mentorship"`
}
