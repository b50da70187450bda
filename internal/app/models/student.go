package models

import "time"

// Student is keyed by its PRN (permanent registration number)
type Student struct {
	ID          int64     `json:"id"`
	PRN         string    `json:"prn"`
	FullName    string    `json:"fullName"`
	Department  string    `json:"department"`
	StudyYear   string    `json:"studyYear"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}
