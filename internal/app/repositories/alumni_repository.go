package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/dberrors"
	"github.com/networknexus/nexushub/internal/pkg/logger"
)

const alumniEmailConstraint = "alumni_email_key"

var alumniColumns = []string{
	"id", "full_name", "email", "department", "pass_out_year", "job_position", "company_name",
	"location", "success_story", "linkedin_url", "hall_of_fame", "special_achievements", "skills",
	"avatar", "created_at", "updated_at",
}

// AlumniRepository handles database operations for alumni records
type AlumniRepository struct {
	db DBTX
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db DBTX) *AlumniRepository {
	return &AlumniRepository{db: db}
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	var a models.Alumni
	err := row.Scan(
		&a.ID, &a.FullName, &a.Email, &a.Department, &a.PassOutYear, &a.JobPosition, &a.CompanyName,
		&a.Location, &a.SuccessStory, &a.LinkedInURL, &a.HallOfFame,
		(*[]string)(&a.SpecialAchievements), (*[]string)(&a.Skills),
		&a.Avatar, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns one page of alumni matching q and the total number of matches
func (r *AlumniRepository) List(ctx context.Context, q ListQuery) ([]models.Alumni, int64, error) {
	total, err := r.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []models.Alumni{}, 0, nil
	}

	list, err := r.query(ctx, q.Apply(psql.Select(alumniColumns...).From("alumni")))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Count returns the number of alumni matching q's predicate
func (r *AlumniRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	sql, args, err := q.Filter(psql.Select("COUNT(*)").From("alumni")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building alumni count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing alumni count query")
		return 0, fmt.Errorf("error counting alumni: %w", err)
	}
	return total, nil
}

// ListExcluding runs q's predicate and order from the first row, skipping excludeIDs, up to limit rows
func (r *AlumniRepository) ListExcluding(ctx context.Context, q ListQuery, excludeIDs []int64, limit int) ([]models.Alumni, error) {
	if limit <= 0 {
		return []models.Alumni{}, nil
	}

	b := q.Filter(psql.Select(alumniColumns...).From("alumni")).
		OrderBy(q.OrderBy...).
		Limit(uint64(limit))
	if len(excludeIDs) > 0 {
		b = b.Where(squirrel.NotEq{"id": excludeIDs})
	}
	return r.query(ctx, b)
}

func (r *AlumniRepository) query(ctx context.Context, b squirrel.SelectBuilder) ([]models.Alumni, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building alumni list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing alumni list query")
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	list := make([]models.Alumni, 0)
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning alumni row")
			return nil, fmt.Errorf("error scanning alumni: %w", err)
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}
	return list, nil
}

// GetByID retrieves an alumni record by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	sql, args, err := psql.Select(alumniColumns...).From("alumni").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get alumni SQL: %w", err)
	}

	a, err := scanAlumni(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", id).Msg("Error fetching alumni")
		return nil, fmt.Errorf("error fetching alumni: %w", err)
	}
	return a, nil
}

// Create inserts a new alumni record and fills in its ID and timestamps
func (r *AlumniRepository) Create(ctx context.Context, a *models.Alumni) error {
	sql, args, err := psql.Insert("alumni").
		Columns("full_name", "email", "department", "pass_out_year", "job_position", "company_name",
			"location", "success_story", "linkedin_url", "hall_of_fame", "special_achievements", "skills", "avatar").
		Values(a.FullName, a.Email, a.Department, a.PassOutYear, a.JobPosition, a.CompanyName,
			a.Location, a.SuccessStory, a.LinkedInURL, a.HallOfFame,
			textArray(a.SpecialAchievements), textArray(a.Skills), a.Avatar).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create alumni SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, alumniEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", a.Email).Msg("Error creating alumni")
		return fmt.Errorf("error creating alumni: %w", err)
	}
	return nil
}

// Update writes every mutable column of a
func (r *AlumniRepository) Update(ctx context.Context, a *models.Alumni) error {
	sql, args, err := psql.Update("alumni").
		Set("full_name", a.FullName).
		Set("email", a.Email).
		Set("department", a.Department).
		Set("pass_out_year", a.PassOutYear).
		Set("job_position", a.JobPosition).
		Set("company_name", a.CompanyName).
		Set("location", a.Location).
		Set("success_story", a.SuccessStory).
		Set("linkedin_url", a.LinkedInURL).
		Set("hall_of_fame", a.HallOfFame).
		Set("special_achievements", textArray(a.SpecialAchievements)).
		Set("skills", textArray(a.Skills)).
		Set("avatar", a.Avatar).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update alumni SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return apperrors.ErrAlumniNotFound
		case dberrors.IsDuplicateConstraintError(err, alumniEmailConstraint):
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("alumniID", a.ID).Msg("Error updating alumni")
		return fmt.Errorf("error updating alumni: %w", err)
	}
	return nil
}

// Delete removes an alumni record
func (r *AlumniRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("alumni").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building delete alumni SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alumniID", id).Msg("Error deleting alumni")
		return fmt.Errorf("error deleting alumni: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}
	return nil
}

// textArray never hands pgx a nil slice, so NOT NULL array columns get '{}'
func textArray(list models.TextList) []string {
	if list == nil {
		return []string{}
	}
	return []string(list)
}
