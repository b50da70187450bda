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

// InternshipService defines the interface for internship operations
type InternshipService interface {
	ListInternships(ctx context.Context, filter repositories.InternshipFilter) (*Page[models.Internship], error)
	GetInternship(ctx context.Context, id int64) (*models.Internship, error)
	CreateInternship(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error)
	TrackApplication(ctx context.Context, id int64) (*models.Internship, error)
}

type internshipServiceImpl struct {
	store  InternshipStore
	clicks ClickCounter
}

// NewInternshipService creates a new internship service instance. clicks may be nil.
func NewInternshipService(store InternshipStore, clicks ClickCounter) InternshipService {
	return &internshipServiceImpl{store: store, clicks: clicks}
}

// ListInternships returns one page of open internships; it also serves the search endpoint
func (s *internshipServiceImpl) ListInternships(ctx context.Context, filter repositories.InternshipFilter) (*Page[models.Internship], error) {
	q := repositories.BuildInternshipQuery(filter)

	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}

	return &Page[models.Internship]{
		Items:    items,
		PageInfo: helpers.NewPageInfo(total, q.Page, q.Limit),
	}, nil
}

// GetInternship retrieves an internship by ID
func (s *internshipServiceImpl) GetInternship(ctx context.Context, id int64) (*models.Internship, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid internship ID")
	}

	i, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}
	return i, nil
}

// CreateInternship stores a new internship
func (s *internshipServiceImpl) CreateInternship(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	i := req.ToModel()
	if i.Limit <= 0 {
		return nil, apperrors.NewValidationError("Internship limit must be positive")
	}

	if err := s.store.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("error creating internship: %w", err)
	}
	return i, nil
}

// TrackApplication records an apply click and returns the internship so the caller can
// redirect to its external form. The click is counted in process only.
func (s *internshipServiceImpl) TrackApplication(ctx context.Context, id int64) (*models.Internship, error) {
	i, err := s.GetInternship(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.clicks != nil {
		s.clicks.IncInternshipApply(i.ID)
	}
	return i, nil
}
