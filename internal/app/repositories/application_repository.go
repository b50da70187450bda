package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/db"
)

// ApplicationTx is the unit of work of one mentorship application.
// Every call runs on the same database transaction.
type ApplicationTx interface {
	FindStudentByPRN(ctx context.Context, prn string) (*models.Student, error)
	LockMentorship(ctx context.Context, id int64) (*models.Mentorship, error)
	HasParticipant(ctx context.Context, mentorshipID, studentID int64) (bool, error)
	AddParticipant(ctx context.Context, p *models.Participant) error
}

// ApplicationRepository opens application transactions
type ApplicationRepository struct {
	db       *db.PostgresDB
	students *StudentRepository
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(database *db.PostgresDB) *ApplicationRepository {
	return &ApplicationRepository{
		db:       database,
		students: NewStudentRepository(database.Pool),
	}
}

// FindStudentByPRN is the read-only PRN lookup outside any transaction
func (r *ApplicationRepository) FindStudentByPRN(ctx context.Context, prn string) (*models.Student, error) {
	return r.students.FindByPRN(ctx, prn)
}

// WithinTx runs fn in one transaction; an error from fn rolls every write back
func (r *ApplicationRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ApplicationTx) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &applicationTx{
			students:    NewStudentRepository(tx),
			mentorships: NewMentorshipRepository(tx),
		})
	})
}

type applicationTx struct {
	students    *StudentRepository
	mentorships *MentorshipRepository
}

func (t *applicationTx) FindStudentByPRN(ctx context.Context, prn string) (*models.Student, error) {
	return t.students.FindByPRN(ctx, prn)
}

func (t *applicationTx) LockMentorship(ctx context.Context, id int64) (*models.Mentorship, error) {
	return t.mentorships.LockByID(ctx, id)
}

func (t *applicationTx) HasParticipant(ctx context.Context, mentorshipID, studentID int64) (bool, error) {
	return t.mentorships.HasParticipant(ctx, mentorshipID, studentID)
}

func (t *applicationTx) AddParticipant(ctx context.Context, p *models.Participant) error {
	return t.mentorships.AddParticipant(ctx, p)
}
