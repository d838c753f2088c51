package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paulmach/orb"

	"giftscout/config"
	"giftscout/internal/domain/entity"
	domainerrors "giftscout/internal/domain/errors"
	"giftscout/internal/domain/service"
	"giftscout/internal/store"
	"giftscout/internal/usecase"
)

type searchService struct {
	store    *store.Store
	searcher service.PeopleSearcher
	demo     usecase.DemoPeopleGenerator
	cfg      *config.Config
	logger   *slog.Logger

	// generation guards against stale completions overwriting newer state.
	generation atomic.Int64

	timerMu       sync.Mutex
	estimateTimer *time.Timer
	debounce      time.Duration
}

// NewSearchService creates the search orchestration service.
func NewSearchService(
	st *store.Store,
	searcher service.PeopleSearcher,
	demo usecase.DemoPeopleGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		store:    st,
		searcher: searcher,
		demo:     demo,
		cfg:      cfg,
		logger:   logger,
		debounce: time.Duration(cfg.Search.DebounceMs) * time.Millisecond,
	}
}

// SetBusiness focuses a business and runs the pipeline for its surroundings.
func (s *searchService) SetBusiness(ctx context.Context, business entity.Business) error {
	s.store.SetCurrentBusiness(&business)
	s.scheduleEstimate()

	return s.RunSearch(ctx)
}

// ClearBusiness drops the focus along with the results and estimate derived
// from it.
func (s *searchService) ClearBusiness(_ context.Context) {
	s.cancelPendingEstimate()
	s.generation.Add(1)

	s.store.SetCurrentBusiness(nil)
	s.store.SetPeople(nil)
	s.store.SetFilterResultCount(nil)
}

// ApplyFilters merges the patch and refreshes the estimate after the quiet
// period.
func (s *searchService) ApplyFilters(_ context.Context, patch entity.SearchFilters) {
	s.store.SetFilters(patch)
	s.scheduleEstimate()
}

// ResetFilters clears the filters and refreshes the estimate.
func (s *searchService) ResetFilters(_ context.Context) {
	s.store.ResetFilters()
	s.scheduleEstimate()
}

// scheduleEstimate arms the debounce timer; only the newest timer fires.
func (s *searchService) scheduleEstimate() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.estimateTimer != nil {
		s.estimateTimer.Stop()
	}
	s.estimateTimer = time.AfterFunc(s.debounce, func() {
		s.refreshEstimate(context.Background())
	})
}

func (s *searchService) cancelPendingEstimate() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.estimateTimer != nil {
		s.estimateTimer.Stop()
		s.estimateTimer = nil
	}
}

// refreshEstimate recomputes the filter result count. Incomplete inputs clear
// the estimate rather than guessing.
func (s *searchService) refreshEstimate(ctx context.Context) {
	business := s.store.CurrentBusiness()
	if business == nil || !s.searcher.IsConfigured() {
		s.store.SetFilterResultCount(nil)

		return
	}

	gen := s.generation.Load()
	total, err := s.searcher.Estimate(ctx, orb.Point{business.Longitude, business.Latitude}, s.radius(), s.store.Filters())
	if err != nil {
		s.logger.Warn("estimate refresh failed", slog.Any("error", err))
		if s.generation.Load() == gen {
			s.store.SetFilterResultCount(nil)
		}

		return
	}
	if total < 0 {
		total = 0
	}

	if s.generation.Load() == gen {
		s.store.SetFilterResultCount(&total)
	}
}

// RunSearch applies the estimate-before-fetch policy: the paid fetch happens
// only when 0 < estimate < the configured ceiling.
func (s *searchService) RunSearch(ctx context.Context) error {
	business := s.store.CurrentBusiness()
	if business == nil {
		s.store.AddNotification(entity.NotificationWarning, "Select a business before searching", 5*time.Second)

		return domainerrors.ErrBusinessNotSet
	}

	center := orb.Point{business.Longitude, business.Latitude}
	gen := s.generation.Add(1)

	if !s.searcher.IsConfigured() {
		people := s.demo.GeneratePeople(center)
		if s.generation.Load() != gen {
			return nil
		}
		count := len(people)
		s.store.SetPeople(people)
		s.store.SetFilterResultCount(&count)
		s.store.AddNotification(entity.NotificationWarning,
			"People search is not configured; showing demo data", 5*time.Second)

		return nil
	}

	estimate, err := s.searcher.Estimate(ctx, center, s.radius(), s.store.Filters())
	if err != nil {
		s.logger.Error("search estimate failed", slog.Any("error", err))
		s.store.AddNotification(entity.NotificationError, "Could not estimate search size", 5*time.Second)

		return domainerrors.ErrEstimateFailed.WithDetails(err.Error())
	}
	if estimate < 0 {
		estimate = 0
	}

	if s.generation.Load() == gen {
		s.store.SetFilterResultCount(&estimate)
	}

	ceiling := s.cfg.PeopleSearch.EstimateCeiling
	switch {
	case estimate == 0:
		if s.generation.Load() == gen {
			s.store.SetPeople(nil)
		}
		s.store.AddNotification(entity.NotificationInfo, "No people match the current filters", 5*time.Second)

		return nil

	case estimate >= ceiling:
		s.store.AddNotification(entity.NotificationWarning,
			fmt.Sprintf("Search would return %d people; narrow the filters below %d before fetching", estimate, ceiling),
			8*time.Second)

		return nil
	}

	s.store.SetIsLoading(true)
	people, err := s.searcher.Search(ctx, center, s.radius(), s.store.Filters(), s.cfg.PeopleSearch.MaxRecords)
	s.store.SetIsLoading(false)

	if err != nil {
		s.logger.Error("people search failed", slog.Any("error", err))
		s.store.AddNotification(entity.NotificationError, "People search failed", 5*time.Second)

		return domainerrors.ErrSearchFailed.WithDetails(err.Error())
	}

	if s.generation.Load() != gen {
		s.logger.Debug("discarding stale search result", slog.Int("count", len(people)))

		return nil
	}

	s.store.SetPeople(people)
	s.store.AddNotification(entity.NotificationSuccess,
		fmt.Sprintf("Found %d people near %s", len(people), business.Name), 5*time.Second)

	return nil
}

// Columns lists the provider's available record fields.
func (s *searchService) Columns(ctx context.Context) ([]string, error) {
	if !s.searcher.IsConfigured() {
		return nil, domainerrors.ErrConfigurationMissing
	}

	return s.searcher.Columns(ctx)
}

// radius reads the radius filter, falling back to the configured default.
func (s *searchService) radius() float64 {
	if r, ok := s.store.Filters().Float(entity.FilterRadius); ok && r > 0 {
		return r
	}

	return s.cfg.PeopleSearch.DefaultRadius
}
