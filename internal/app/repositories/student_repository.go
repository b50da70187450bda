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

// StudentRepository reads student records. The API never writes students; Upsert serves the seed command.
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByPRN looks a student up by registration number
func (r *StudentRepository) FindByPRN(ctx context.Context, prn string) (*models.Student, error) {
	sql, args, err := psql.Select("id", "prn", "full_name", "department", "study_year", "phone_number", "email", "created_at").
		From("students").
		Where(squirrel.Eq{"prn": prn}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building find student SQL: %w", err)
	}

	var s models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.PRN, &s.FullName, &s.Department, &s.StudyYear, &s.PhoneNumber, &s.Email, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("prn", prn).Msg("Error fetching student by PRN")
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return &s, nil
}

// Upsert inserts a student or refreshes the profile of the one holding the same PRN
func (r *StudentRepository) Upsert(ctx context.Context, s *models.Student) error {
	sql, args, err := psql.Insert("students").
		Columns("prn", "full_name", "department", "study_year", "phone_number", "email").
		Values(s.PRN, s.FullName, s.Department, s.StudyYear, s.PhoneNumber, s.Email).
		Suffix(`ON CONFLICT (prn) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			department = EXCLUDED.department,
			study_year = EXCLUDED.study_year,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email
		RETURNING id, created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building upsert student SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		logger.Error().Err(err).Str("prn", s.PRN).Msg("Error upserting student")
		return fmt.Errorf("error upserting student: %w", err)
	}
	return nil
}
