package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) (*fakeApplicationStore, *recordingHooks, *applicationServiceImpl) {
	t.Helper()
	store := newFakeApplicationStore()
	store.addStudent(models.Student{ID: 1, PRN: "72012345K", FullName: "Rahul Patil", Department: "CSE", StudyYear: "TY", PhoneNumber: "9876543210", Email: "rahul@example.com"})
	store.addStudent(models.Student{ID: 2, PRN: "72012346L", FullName: "Sneha Joshi", Department: "ENTC", StudyYear: "SY"})
	store.addStudent(models.Student{ID: 3, PRN: "72012347M", FullName: "Amit Kulkarni", Department: "MECH", StudyYear: "BE"})

	hooks := newRecordingHooks()
	svc := NewApplicationService(store, hooks, hooks, zerolog.Nop()).(*applicationServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return store, hooks, svc
}

func TestApplyToMentorship_Success(t *testing.T) {
	store, hooks, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Title: "System design", Limit: 5}, 2)

	result, err := svc.ApplyToMentorship(context.Background(), 10, " 72012345K ", "I want to learn")
	require.NoError(t, err)

	assert.Equal(t, "Rahul Patil", result.Student.FullName)
	assert.Equal(t, "2/5", result.Mentorship.Occupancy())
	assert.Equal(t, "I want to learn", result.Participant.Justification)
	assert.Equal(t, 2026, result.Participant.AppliedAt.Year())
	assert.Equal(t, 2, store.count(10))

	assert.Equal(t, []publishedEvent{{mentorshipID: 10, current: 2, max: 5}}, hooks.published)
	assert.Equal(t, 1, hooks.outcomes[metrics.OutcomeAccepted])
}

func TestApplyToMentorship_Full(t *testing.T) {
	store, hooks, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Limit: 2}, 2, 3)

	_, err := svc.ApplyToMentorship(context.Background(), 10, "72012345K", "please")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))

	msg, ok := apperrors.MessageOf(err)
	require.True(t, ok)
	assert.Equal(t, "Mentorship is already full", msg)

	assert.Equal(t, 2, store.count(10))
	assert.Empty(t, hooks.published)
	assert.Equal(t, 1, hooks.outcomes[metrics.OutcomeFull])
}

func TestApplyToMentorship_FullTakesPrecedenceOverDuplicate(t *testing.T) {
	store, _, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Limit: 1}, 1)

	_, err := svc.ApplyToMentorship(context.Background(), 10, "72012345K", "again")
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))
}

func TestApplyToMentorship_Duplicate(t *testing.T) {
	store, hooks, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Limit: 5})

	_, err := svc.ApplyToMentorship(context.Background(), 10, "72012345K", "first")
	require.NoError(t, err)

	_, err = svc.ApplyToMentorship(context.Background(), 10, "72012345K", "second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateApplication))
	assert.Equal(t, 1, store.count(10))
	assert.Equal(t, 1, hooks.outcomes[metrics.OutcomeDuplicate])
	assert.Len(t, hooks.published, 1)
}

func TestApplyToMentorship_NotFound(t *testing.T) {
	store, hooks, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Limit: 5})

	t.Run("unknown prn", func(t *testing.T) {
		_, err := svc.ApplyToMentorship(context.Background(), 10, "NOEXIST", "hello")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
		msg, _ := apperrors.MessageOf(err)
		assert.Equal(t, "Student not found with this PRN", msg)
	})

	t.Run("unknown mentorship", func(t *testing.T) {
		_, err := svc.ApplyToMentorship(context.Background(), 99, "72012345K", "hello")
		require.Error(t, err)
		msg, _ := apperrors.MessageOf(err)
		assert.Equal(t, "Mentorship not found", msg)
	})

	assert.Equal(t, 0, store.count(10))
	assert.Equal(t, 2, hooks.outcomes[metrics.OutcomeNotFound])
}

func TestApplyToMentorship_Validation(t *testing.T) {
	_, hooks, svc := newApplicationFixture(t)

	tests := []struct {
		name          string
		mentorshipID  int64
		prn           string
		justification string
	}{
		{"bad id", 0, "72012345K", "x"},
		{"blank prn", 10, "   ", "x"},
		{"blank justification", 10, "72012345K", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ApplyToMentorship(context.Background(), tt.mentorshipID, tt.prn, tt.justification)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
	assert.Equal(t, len(tests), hooks.outcomes[metrics.OutcomeInvalid])
}

func TestApplyToMentorship_ConcurrentLastSeat(t *testing.T) {
	store, hooks, svc := newApplicationFixture(t)
	store.addMentorship(models.Mentorship{ID: 10, Limit: 1})

	prns := []string{"72012345K", "72012346L", "72012347M"}
	errs := make([]error, len(prns))

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, prn := range prns {
		wg.Add(1)
		go func(i int, prn string) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.ApplyToMentorship(context.Background(), 10, prn, "last seat")
		}(i, prn)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.count(10))
	assert.Equal(t, 2, hooks.outcomes[metrics.OutcomeFull])
}

func TestApplyToMentorship_ConcurrentNeverExceedsLimit(t *testing.T) {
	store := newFakeApplicationStore()
	for i := 1; i <= 20; i++ {
		store.addStudent(models.Student{ID: int64(i), PRN: fmt.Sprintf("PRN%02d", i)})
	}
	store.addMentorship(models.Mentorship{ID: 1, Limit: 7})
	svc := NewApplicationService(store, nil, nil, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.ApplyToMentorship(context.Background(), 1, fmt.Sprintf("PRN%02d", i), "please")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 7, store.count(1))
}

func TestApplyToMentorship_StoreFailureIsWrapped(t *testing.T) {
	_, _, svc := newApplicationFixture(t)
	failing := &failingApplicationStore{err: errors.New("connection reset")}
	svc.store = failing

	_, err := svc.ApplyToMentorship(context.Background(), 10, "72012345K", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error applying to mentorship")
	assert.False(t, isApplicationError(err))
}

type failingApplicationStore struct {
	err error
}

func (f *failingApplicationStore) FindStudentByPRN(context.Context, string) (*models.Student, error) {
	return nil, f.err
}

func (f *failingApplicationStore) WithinTx(context.Context, func(context.Context, repositories.ApplicationTx) error) error {
	return f.err
}

func TestValidatePRN(t *testing.T) {
	_, hooks, svc := newApplicationFixture(t)

	student, err := svc.ValidatePRN(context.Background(), "72012345K")
	require.NoError(t, err)
	assert.Equal(t, "rahul@example.com", student.Email)

	_, err = svc.ValidatePRN(context.Background(), "NOEXIST")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.ValidatePRN(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	assert.Empty(t, hooks.outcomes)
}
