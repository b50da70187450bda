package services

import (
	"context"
	"fmt"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// HallOfFameService lists alumni that carry a hall of fame tier
type HallOfFameService interface {
	GetHallOfFame(ctx context.Context, filter repositories.HallOfFameFilter) (*Page[models.Alumni], error)
}

type hallOfFameServiceImpl struct {
	store  AlumniStore
	logger zerolog.Logger
}

// NewHallOfFameService creates a new hall of fame service instance
func NewHallOfFameService(store AlumniStore, logger zerolog.Logger) HallOfFameService {
	return &hallOfFameServiceImpl{store: store, logger: logger}
}

// GetHallOfFame returns one page of the showcase. When the page comes back short while more
// than a page's worth of alumni match, it is topped up from the start of the same ordering,
// skipping the alumni already on the page. The pagination block always describes the primary query.
func (s *hallOfFameServiceImpl) GetHallOfFame(ctx context.Context, filter repositories.HallOfFameFilter) (*Page[models.Alumni], error) {
	q := repositories.BuildHallOfFameQuery(filter)

	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing hall of fame: %w", err)
	}

	if len(items) < q.Limit && total > int64(q.Limit) {
		exclude := make([]int64, 0, len(items))
		for _, a := range items {
			exclude = append(exclude, a.ID)
		}

		extra, err := s.store.ListExcluding(ctx, q, exclude, q.Limit-len(items))
		if err != nil {
			return nil, fmt.Errorf("error back-filling hall of fame page: %w", err)
		}

		s.logger.Debug().
			Int("page", q.Page).
			Int("primary", len(items)).
			Int("backfilled", len(extra)).
			Msg("Hall of fame page back-filled")
		items = append(items, extra...)
	}

	return &Page[models.Alumni]{
		Items:    items,
		PageInfo: helpers.NewPageInfo(total, q.Page, q.Limit),
	}, nil
}
