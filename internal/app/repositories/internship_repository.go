package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/logger"
)

var internshipColumns = []string{
	"id", "title", "company", "mode", "location", "duration", "stipend", "participant_limit",
	"description", "prerequisites", "required_skills", "deadline", "google_form_link", "alumni_id",
	"alumni_name", "alumni_company", "alumni_position", "is_approved", "is_mark_as_complete", "created_at",
}

// InternshipRepository handles database operations for internships
type InternshipRepository struct {
	db DBTX
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db DBTX) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var i models.Internship
	err := row.Scan(
		&i.ID, &i.Title, &i.Company, &i.Mode, &i.Location, &i.Duration, &i.Stipend, &i.Limit,
		&i.Description, &i.Prerequisites, (*[]string)(&i.RequiredSkills), &i.Deadline, &i.GoogleFormLink, &i.AlumniID,
		&i.AlumniName, &i.AlumniCompany, &i.AlumniPosition, &i.IsApproved, &i.IsMarkAsComplete, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns one page of internships matching q and the total number of matches
func (r *InternshipRepository) List(ctx context.Context, q ListQuery) ([]models.Internship, int64, error) {
	countSQL, countArgs, err := q.Filter(psql.Select("COUNT(*)").From("internships")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building internship count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing internship count query")
		return nil, 0, fmt.Errorf("error counting internships: %w", err)
	}
	if total == 0 {
		return []models.Internship{}, 0, nil
	}

	sql, args, err := q.Apply(psql.Select(internshipColumns...).From("internships")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building internship list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing internship list query")
		return nil, 0, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	list := make([]models.Internship, 0, q.Limit)
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning internship row")
			return nil, 0, fmt.Errorf("error scanning internship: %w", err)
		}
		list = append(list, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}
	return list, total, nil
}

// GetByID retrieves an internship by ID regardless of approval state
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := psql.Select(internshipColumns...).From("internships").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get internship SQL: %w", err)
	}

	i, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error fetching internship")
		return nil, fmt.Errorf("error fetching internship: %w", err)
	}
	return i, nil
}

// Create inserts an internship and fills in its ID and creation time
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	sql, args, err := psql.Insert("internships").
		Columns("title", "company", "mode", "location", "duration", "stipend", "participant_limit",
			"description", "prerequisites", "required_skills", "deadline", "google_form_link", "alumni_id",
			"alumni_name", "alumni_company", "alumni_position", "is_approved", "is_mark_as_complete").
		Values(i.Title, i.Company, i.Mode, i.Location, i.Duration, i.Stipend, i.Limit,
			i.Description, i.Prerequisites, textArray(i.RequiredSkills), i.Deadline, i.GoogleFormLink, i.AlumniID,
			i.AlumniName, i.AlumniCompany, i.AlumniPosition, i.IsApproved, i.IsMarkAsComplete).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create internship SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&i.ID, &i.CreatedAt); err != nil {
		logger.Error().Err(err).Str("title", i.Title).Msg("Error creating internship")
		return fmt.Errorf("error creating internship: %w", err)
	}
	return nil
}
