package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

// ApplicationResult is the committed state after a successful application
type ApplicationResult struct {
	Student     *models.Student
	Mentorship  *models.Mentorship
	Participant *models.Participant
}

// ApplicationService defines the mentorship application workflow
type ApplicationService interface {
	ApplyToMentorship(ctx context.Context, mentorshipID int64, prn, justification string) (*ApplicationResult, error)
	ValidatePRN(ctx context.Context, prn string) (*models.Student, error)
}

type applicationServiceImpl struct {
	store     ApplicationStore
	publisher OccupancyPublisher
	observer  ApplicationObserver
	logger    zerolog.Logger
	now       func() time.Time
}

// NewApplicationService creates a new application service instance. publisher and observer may be nil.
func NewApplicationService(store ApplicationStore, publisher OccupancyPublisher, observer ApplicationObserver, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		store:     store,
		publisher: publisher,
		observer:  observer,
		logger:    logger,
		now:       time.Now,
	}
}

// ApplyToMentorship enrolls the student identified by prn. Inside one transaction it resolves the
// student, locks the mentorship row, rejects a full mentorship, then rejects a repeat application,
// and appends the participant. Any failure leaves the mentorship unchanged.
func (s *applicationServiceImpl) ApplyToMentorship(ctx context.Context, mentorshipID int64, prn, justification string) (*ApplicationResult, error) {
	prn = strings.TrimSpace(prn)
	justification = strings.TrimSpace(justification)

	switch {
	case mentorshipID <= 0:
		s.observe(metrics.OutcomeInvalid)
		return nil, apperrors.NewValidationError("Invalid mentorship ID")
	case prn == "":
		s.observe(metrics.OutcomeInvalid)
		return nil, apperrors.NewValidationError("PRN is required")
	case justification == "":
		s.observe(metrics.OutcomeInvalid)
		return nil, apperrors.NewValidationError("Justification is required")
	}

	var result ApplicationResult
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repositories.ApplicationTx) error {
		student, err := tx.FindStudentByPRN(ctx, prn)
		if err != nil {
			return err
		}

		mentorship, err := tx.LockMentorship(ctx, mentorshipID)
		if err != nil {
			return err
		}

		if mentorship.IsFull() {
			return apperrors.NewCapacityExceededError()
		}

		applied, err := tx.HasParticipant(ctx, mentorship.ID, student.ID)
		if err != nil {
			return err
		}
		if applied {
			return apperrors.NewDuplicateApplicationError()
		}

		participant := &models.Participant{
			MentorshipID:  mentorship.ID,
			StudentID:     student.ID,
			Justification: justification,
			AppliedAt:     s.now(),
		}
		if err := tx.AddParticipant(ctx, participant); err != nil {
			return err
		}
		mentorship.ParticipantCount++

		result = ApplicationResult{Student: student, Mentorship: mentorship, Participant: participant}
		return nil
	})
	if err != nil {
		s.observe(outcomeOf(err))
		s.logger.Info().
			Err(err).
			Int64("mentorshipID", mentorshipID).
			Str("prn", prn).
			Msg("Mentorship application rejected")

		if isApplicationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error applying to mentorship: %w", err)
	}

	s.observe(metrics.OutcomeAccepted)
	s.logger.Info().
		Int64("mentorshipID", mentorshipID).
		Int64("studentID", result.Student.ID).
		Str("occupancy", result.Mentorship.Occupancy()).
		Msg("Mentorship application accepted")

	if s.publisher != nil {
		s.publisher.PublishOccupancy(result.Mentorship.ID, result.Mentorship.ParticipantCount, result.Mentorship.Limit)
	}
	return &result, nil
}

// ValidatePRN resolves a PRN to its student without side effects
func (s *applicationServiceImpl) ValidatePRN(ctx context.Context, prn string) (*models.Student, error) {
	prn = strings.TrimSpace(prn)
	if prn == "" {
		return nil, apperrors.NewValidationError("PRN is required")
	}

	student, err := s.store.FindStudentByPRN(ctx, prn)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error looking up PRN: %w", err)
	}
	return student, nil
}

func (s *applicationServiceImpl) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveApplication(outcome)
	}
}

func isApplicationError(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrCapacityExceeded, apperrors.ErrDuplicateApplication, apperrors.ErrValidationFailed)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return metrics.OutcomeFull
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return metrics.OutcomeDuplicate
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperrors.ErrValidationFailed):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
