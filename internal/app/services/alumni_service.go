package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/helpers"
)

// AlumniService defines the interface for alumni directory operations
type AlumniService interface {
	ListAlumni(ctx context.Context, filter repositories.AlumniFilter) (*Page[models.Alumni], error)
	GetAlumni(ctx context.Context, id int64) (*models.Alumni, error)
	CreateAlumni(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error)
	UpdateAlumni(ctx context.Context, id int64, req *dto.UpdateAlumniRequest) (*models.Alumni, error)
	DeleteAlumni(ctx context.Context, id int64) error
}

type alumniServiceImpl struct {
	store AlumniStore
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(store AlumniStore) AlumniService {
	return &alumniServiceImpl{store: store}
}

// validateAlumni checks the fields the database cannot check for us
func validateAlumni(a *models.Alumni) error {
	if a.FullName == "" {
		return apperrors.NewValidationError("Full name is required")
	}
	if a.Email == "" {
		return apperrors.NewValidationError("Email is required")
	}
	if !a.Department.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("Department must be one of %v", models.Departments))
	}
	if !a.HallOfFame.IsValid() {
		return apperrors.NewValidationError("Hall of fame must be empty, notable or featured")
	}
	return nil
}

// ListAlumni returns one page of the alumni directory
func (s *alumniServiceImpl) ListAlumni(ctx context.Context, filter repositories.AlumniFilter) (*Page[models.Alumni], error) {
	q := repositories.BuildAlumniQuery(filter)

	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}

	return &Page[models.Alumni]{
		Items:    items,
		PageInfo: helpers.NewPageInfo(total, q.Page, q.Limit),
	}, nil
}

// GetAlumni retrieves an alumni record by ID
func (s *alumniServiceImpl) GetAlumni(ctx context.Context, id int64) (*models.Alumni, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid alumni ID")
	}

	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving alumni: %w", err)
	}
	return a, nil
}

// CreateAlumni creates a new alumni record
func (s *alumniServiceImpl) CreateAlumni(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error) {
	a := req.ToModel()
	if err := validateAlumni(a); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, a); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating alumni: %w", err)
	}
	return a, nil
}

// UpdateAlumni applies a partial update
func (s *alumniServiceImpl) UpdateAlumni(ctx context.Context, id int64, req *dto.UpdateAlumniRequest) (*models.Alumni, error) {
	a, err := s.GetAlumni(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(a)
	if err := validateAlumni(a); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, a); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating alumni: %w", err)
	}
	return a, nil
}

// DeleteAlumni removes an alumni record
func (s *alumniServiceImpl) DeleteAlumni(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("Invalid alumni ID")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting alumni: %w", err)
	}
	return nil
}
