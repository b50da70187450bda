package services

import (
	"context"
	"errors"
	"testing"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInternships_SearchIsCaseInsensitive(t *testing.T) {
	store := &fakeInternshipStore{}
	svc := NewInternshipService(store, nil)

	_, err := svc.ListInternships(context.Background(), repositories.InternshipFilter{Query: "Backend", Location: "Pune"})
	require.NoError(t, err)

	sql, args, err := store.lastQuery.Where.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "title ILIKE ?")
	assert.Contains(t, sql, "is_mark_as_complete = ?")
	assert.Contains(t, args, "%Backend%")
	assert.Contains(t, args, "Pune")
	assert.Equal(t, repositories.InternshipPageSize, store.lastQuery.Limit)
}

func TestCreateInternship_DefaultsLocation(t *testing.T) {
	store := &fakeInternshipStore{}
	svc := NewInternshipService(store, nil)

	i, err := svc.CreateInternship(context.Background(), &dto.CreateInternshipRequest{Title: "Data intern", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "Remote", i.Location)
	assert.Equal(t, int64(1), i.ID)

	_, err = svc.CreateInternship(context.Background(), &dto.CreateInternshipRequest{Title: "Nobody", Limit: 0})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestTrackApplication_CountsClicks(t *testing.T) {
	store := &fakeInternshipStore{items: []models.Internship{{ID: 3, GoogleFormLink: "https://forms.gle/abc"}}}
	hooks := newRecordingHooks()
	svc := NewInternshipService(store, hooks)

	for range 2 {
		i, err := svc.TrackApplication(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "https://forms.gle/abc", i.GoogleFormLink)
	}
	assert.Equal(t, 2, hooks.clicks[3])

	_, err := svc.TrackApplication(context.Background(), 4)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Zero(t, hooks.clicks[4])
}
