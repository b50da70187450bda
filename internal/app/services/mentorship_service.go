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

// MentorshipService defines the interface for mentorship operations
type MentorshipService interface {
	ListMentorships(ctx context.Context, filter repositories.MentorshipFilter) (*Page[models.Mentorship], error)
	GetMentorship(ctx context.Context, id int64) (*models.Mentorship, error)
	CreateMentorship(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.Mentorship, error)
	ApproveMentorship(ctx context.Context, id int64) (*models.Mentorship, error)
	GetDepartments(ctx context.Context) ([]string, error)
	GetStudyYears(ctx context.Context) ([]string, error)
	GetParticipants(ctx context.Context, mentorshipID int64) ([]models.Participant, error)
}

type mentorshipServiceImpl struct {
	store MentorshipStore
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(store MentorshipStore) MentorshipService {
	return &mentorshipServiceImpl{store: store}
}

// ListMentorships returns one page of approved mentorships
func (s *mentorshipServiceImpl) ListMentorships(ctx context.Context, filter repositories.MentorshipFilter) (*Page[models.Mentorship], error) {
	q := repositories.BuildMentorshipQuery(filter)

	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorships: %w", err)
	}

	return &Page[models.Mentorship]{
		Items:    items,
		PageInfo: helpers.NewPageInfo(total, q.Page, q.Limit),
	}, nil
}

// GetMentorship retrieves a mentorship by ID
func (s *mentorshipServiceImpl) GetMentorship(ctx context.Context, id int64) (*models.Mentorship, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid mentorship ID")
	}

	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving mentorship: %w", err)
	}
	return m, nil
}

// CreateMentorship stores a new mentorship awaiting approval
func (s *mentorshipServiceImpl) CreateMentorship(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.Mentorship, error) {
	m := req.ToModel()
	if m.Limit <= 0 {
		return nil, apperrors.NewValidationError("Mentorship limit must be positive")
	}
	if !m.Mode.IsValid() {
		return nil, apperrors.NewValidationError("Mode must be Online, Offline or Hybrid")
	}

	if err := s.store.Create(ctx, m); err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating mentorship: %w", err)
	}
	return m, nil
}

// ApproveMentorship publishes a mentorship to the public listing
func (s *mentorshipServiceImpl) ApproveMentorship(ctx context.Context, id int64) (*models.Mentorship, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("Invalid mentorship ID")
	}

	if err := s.store.SetApproved(ctx, id, true); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error approving mentorship: %w", err)
	}
	return s.GetMentorship(ctx, id)
}

// GetDepartments lists the departments mentorships exist for
func (s *mentorshipServiceImpl) GetDepartments(ctx context.Context) ([]string, error) {
	values, err := s.store.DistinctValues(ctx, "department")
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return values, nil
}

// GetStudyYears lists the study years mentorships target
func (s *mentorshipServiceImpl) GetStudyYears(ctx context.Context) ([]string, error) {
	values, err := s.store.DistinctValues(ctx, "study_year")
	if err != nil {
		return nil, fmt.Errorf("error retrieving study years: %w", err)
	}
	return values, nil
}

// GetParticipants lists a mentorship's participants with their student records
func (s *mentorshipServiceImpl) GetParticipants(ctx context.Context, mentorshipID int64) ([]models.Participant, error) {
	if _, err := s.GetMentorship(ctx, mentorshipID); err != nil {
		return nil, err
	}

	participants, err := s.store.ListParticipants(ctx, mentorshipID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participants: %w", err)
	}
	return participants, nil
}
