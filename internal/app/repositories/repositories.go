package repositories

import (
	"github.com/networknexus/nexushub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlumniRepository      *AlumniRepository
	StudentRepository     *StudentRepository
	MentorshipRepository  *MentorshipRepository
	ApplicationRepository *ApplicationRepository
	InternshipRepository  *InternshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AlumniRepository:      NewAlumniRepository(database.Pool),
		StudentRepository:     NewStudentRepository(database.Pool),
		MentorshipRepository:  NewMentorshipRepository(database.Pool),
		ApplicationRepository: NewApplicationRepository(database),
		InternshipRepository:  NewInternshipRepository(database.Pool),
	}
}
