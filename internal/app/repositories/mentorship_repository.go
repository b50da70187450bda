package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/dberrors"
	"github.com/networknexus/nexushub/internal/pkg/logger"
)

// ParticipantUniqueConstraint keeps a student from appearing twice in one mentorship
const ParticipantUniqueConstraint = "mentorship_participants_mentorship_student_key"

const participantCountExpr = "(SELECT COUNT(*) FROM mentorship_participants mp WHERE mp.mentorship_id = m.id) AS participant_count"

var mentorshipColumns = []string{
	"m.id", "m.title", "m.description", "m.target_audience", "m.study_year", "m.department",
	"m.full_name", "m.job_position", "m.company_name", "m.date", "m.participant_limit", "m.mode",
	"m.is_approved", "m.created_at",
}

// MentorshipRepository handles database operations for mentorships and their participants
type MentorshipRepository struct {
	db DBTX
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db DBTX) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

func (r *MentorshipRepository) selectWithCount() squirrel.SelectBuilder {
	return psql.Select(append(append([]string{}, mentorshipColumns...), participantCountExpr)...).
		From("mentorships m")
}

func scanMentorship(row pgx.Row, withCount bool) (*models.Mentorship, error) {
	var m models.Mentorship
	dest := []any{
		&m.ID, &m.Title, &m.Description, &m.TargetAudience, &m.StudyYear, &m.Department,
		&m.FullName, &m.JobPosition, &m.CompanyName, &m.Date, &m.Limit, &m.Mode,
		&m.IsApproved, &m.CreatedAt,
	}
	if withCount {
		dest = append(dest, &m.ParticipantCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns one page of mentorships matching q, with participant counts
func (r *MentorshipRepository) List(ctx context.Context, q ListQuery) ([]models.Mentorship, int64, error) {
	countSQL, countArgs, err := q.Filter(psql.Select("COUNT(*)").From("mentorships m")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building mentorship count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing mentorship count query")
		return nil, 0, fmt.Errorf("error counting mentorships: %w", err)
	}
	if total == 0 {
		return []models.Mentorship{}, 0, nil
	}

	sql, args, err := q.Apply(r.selectWithCount()).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building mentorship list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing mentorship list query")
		return nil, 0, fmt.Errorf("error listing mentorships: %w", err)
	}
	defer rows.Close()

	list := make([]models.Mentorship, 0, q.Limit)
	for rows.Next() {
		m, err := scanMentorship(rows, true)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning mentorship row")
			return nil, 0, fmt.Errorf("error scanning mentorship: %w", err)
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}
	return list, total, nil
}

// GetByID retrieves a mentorship with its participant count
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	sql, args, err := r.selectWithCount().Where(squirrel.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get mentorship SQL: %w", err)
	}

	m, err := scanMentorship(r.db.QueryRow(ctx, sql, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		logger.Error().Err(err).Int64("mentorshipID", id).Msg("Error fetching mentorship")
		return nil, fmt.Errorf("error fetching mentorship: %w", err)
	}
	return m, nil
}

// lockMentorshipQuery takes the row lock that serialises applications to one mentorship
func lockMentorshipQuery(id int64) squirrel.SelectBuilder {
	return psql.Select(mentorshipColumns...).
		From("mentorships m").
		Where(squirrel.Eq{"m.id": id}).
		Suffix("FOR UPDATE")
}

func participantExistsQuery(mentorshipID, studentID int64) squirrel.SelectBuilder {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("mentorship_participants").
		Where(squirrel.Eq{"mentorship_id": mentorshipID}, squirrel.Eq{"student_id": studentID}).
		Suffix(")")
}

// LockByID loads a mentorship with SELECT ... FOR UPDATE and then counts its participants.
// Must run inside a transaction; concurrent callers for the same id queue on the row lock.
func (r *MentorshipRepository) LockByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	sql, args, err := lockMentorshipQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building lock mentorship SQL: %w", err)
	}

	m, err := scanMentorship(r.db.QueryRow(ctx, sql, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		logger.Error().Err(err).Int64("mentorshipID", id).Msg("Error locking mentorship")
		return nil, fmt.Errorf("error locking mentorship: %w", err)
	}

	if m.ParticipantCount, err = r.CountParticipants(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}

// CountParticipants returns how many students are enrolled
func (r *MentorshipRepository) CountParticipants(ctx context.Context, mentorshipID int64) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").
		From("mentorship_participants").
		Where(squirrel.Eq{"mentorship_id": mentorshipID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building participant count SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("mentorshipID", mentorshipID).Msg("Error counting participants")
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}

// HasParticipant reports whether the student is already enrolled
func (r *MentorshipRepository) HasParticipant(ctx context.Context, mentorshipID, studentID int64) (bool, error) {
	sql, args, err := participantExistsQuery(mentorshipID, studentID).ToSql()
	if err != nil {
		return false, fmt.Errorf("error building participant exists SQL: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("mentorshipID", mentorshipID).Int64("studentID", studentID).Msg("Error checking participant")
		return false, fmt.Errorf("error checking participant: %w", err)
	}
	return exists, nil
}

// AddParticipant enrolls a student. A unique violation means the student already applied.
func (r *MentorshipRepository) AddParticipant(ctx context.Context, p *models.Participant) error {
	sql, args, err := psql.Insert("mentorship_participants").
		Columns("mentorship_id", "student_id", "justification", "applied_at").
		Values(p.MentorshipID, p.StudentID, p.Justification, p.AppliedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building add participant SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, ParticipantUniqueConstraint) {
			return apperrors.NewDuplicateApplicationError()
		}
		logger.Error().Err(err).Int64("mentorshipID", p.MentorshipID).Int64("studentID", p.StudentID).Msg("Error adding participant")
		return fmt.Errorf("error adding participant: %w", err)
	}
	return nil
}

// ListParticipants returns the participants of a mentorship with their student records, oldest first
func (r *MentorshipRepository) ListParticipants(ctx context.Context, mentorshipID int64) ([]models.Participant, error) {
	sql, args, err := psql.Select(
		"mp.id", "mp.mentorship_id", "mp.student_id", "mp.justification", "mp.applied_at",
		"s.prn", "s.full_name", "s.department", "s.study_year", "s.phone_number", "s.email",
	).
		From("mentorship_participants mp").
		Join("students s ON s.id = mp.student_id").
		Where(squirrel.Eq{"mp.mentorship_id": mentorshipID}).
		OrderBy("mp.applied_at ASC", "mp.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list participants SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mentorshipID", mentorshipID).Msg("Error listing participants")
		return nil, fmt.Errorf("error listing participants: %w", err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		s := &models.Student{}
		if err := rows.Scan(
			&p.ID, &p.MentorshipID, &p.StudentID, &p.Justification, &p.AppliedAt,
			&s.PRN, &s.FullName, &s.Department, &s.StudyYear, &s.PhoneNumber, &s.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning participant: %w", err)
		}
		s.ID = p.StudentID
		p.Student = s
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}
	return participants, nil
}

// Create inserts a mentorship and fills in its ID and creation time
func (r *MentorshipRepository) Create(ctx context.Context, m *models.Mentorship) error {
	sql, args, err := psql.Insert("mentorships").
		Columns("title", "description", "target_audience", "study_year", "department", "full_name",
			"job_position", "company_name", "date", "participant_limit", "mode", "is_approved").
		Values(m.Title, m.Description, m.TargetAudience, m.StudyYear, m.Department, m.FullName,
			m.JobPosition, m.CompanyName, m.Date, m.Limit, m.Mode, m.IsApproved).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create mentorship SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		if dberrors.IsCheckConstraintError(err) {
			return apperrors.NewValidationError("Mentorship limit must be positive")
		}
		logger.Error().Err(err).Str("title", m.Title).Msg("Error creating mentorship")
		return fmt.Errorf("error creating mentorship: %w", err)
	}
	return nil
}

// SetApproved flips the approval flag
func (r *MentorshipRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	sql, args, err := psql.Update("mentorships").
		Set("is_approved", approved).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building approve mentorship SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mentorshipID", id).Msg("Error approving mentorship")
		return fmt.Errorf("error approving mentorship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}
	return nil
}

// DistinctValues returns the sorted distinct values of a filterable column (department or study_year)
func (r *MentorshipRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if column != "department" && column != "study_year" {
		return nil, fmt.Errorf("unsupported distinct column %q", column)
	}

	sql, args, err := psql.Select(column).
		Distinct().
		From("mentorships").
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building distinct SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error listing distinct mentorship values")
		return nil, fmt.Errorf("error listing distinct %s: %w", column, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("error scanning distinct %s: %w", column, err)
	}
	return values, nil
}
