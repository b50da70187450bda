package services

import (
	"context"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/repositories"
)

// Services defined in this package:
// - AlumniService: alumni directory and admin maintenance
// - HallOfFameService: tier-ranked showcase listing with page back-fill
// - MentorshipService: mentorship listing, creation and approval
// - ApplicationService: PRN lookup and capacity-checked enrollment
// - InternshipService: internship listing and apply-click tracking
// - AdminService: admin login

// AlumniStore is the persistence used by the alumni and hall of fame services
type AlumniStore interface {
	List(ctx context.Context, q repositories.ListQuery) ([]models.Alumni, int64, error)
	ListExcluding(ctx context.Context, q repositories.ListQuery, excludeIDs []int64, limit int) ([]models.Alumni, error)
	GetByID(ctx context.Context, id int64) (*models.Alumni, error)
	Create(ctx context.Context, a *models.Alumni) error
	Update(ctx context.Context, a *models.Alumni) error
	Delete(ctx context.Context, id int64) error
}

// MentorshipStore is the persistence used by the mentorship service
type MentorshipStore interface {
	List(ctx context.Context, q repositories.ListQuery) ([]models.Mentorship, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Mentorship, error)
	Create(ctx context.Context, m *models.Mentorship) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	DistinctValues(ctx context.Context, column string) ([]string, error)
	ListParticipants(ctx context.Context, mentorshipID int64) ([]models.Participant, error)
}

// ApplicationStore is the persistence used by the application service
type ApplicationStore interface {
	FindStudentByPRN(ctx context.Context, prn string) (*models.Student, error)
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.ApplicationTx) error) error
}

// InternshipStore is the persistence used by the internship service
type InternshipStore interface {
	List(ctx context.Context, q repositories.ListQuery) ([]models.Internship, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	Create(ctx context.Context, i *models.Internship) error
}

// OccupancyPublisher is notified after an application commits
type OccupancyPublisher interface {
	PublishOccupancy(mentorshipID int64, current, max int)
}

// ApplicationObserver counts application outcomes
type ApplicationObserver interface {
	ObserveApplication(outcome string)
}

// ClickCounter counts internship apply clicks
type ClickCounter interface {
	IncInternshipApply(internshipID int64)
}

// Page is one page of a listing plus its pagination block
type Page[T any] struct {
	Items    []T
	PageInfo dto.PageInfo
}
