package impl

import (
	"log/slog"
	"sync"

	"github.com/paulmach/orb"

	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"
	"giftscout/internal/store"
	"giftscout/internal/usecase"
)

// Camera parameters for the flight to a newly focused business.
const (
	businessFlightZoom    = 16.0
	businessFlightPitch   = 60.0
	businessFlightBearing = -17.6
)

type markerService struct {
	store   *store.Store
	surface service.MapSurface
	logger  *slog.Logger

	mu             sync.Mutex
	markers        []service.MarkerID
	lastBusinessID string
	unsubscribe    func()
}

// NewMarkerService creates the marker synchronizer. It stays idle until
// Start is called.
func NewMarkerService(st *store.Store, surface service.MapSurface, logger *slog.Logger) usecase.MarkerSyncUsecase {
	return &markerService{
		store:   st,
		surface: surface,
		logger:  logger,
	}
}

// Start subscribes to store changes and performs an initial sync.
func (s *markerService) Start() {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.mu.Unlock()

		return
	}
	s.unsubscribe = s.store.Subscribe(s.onChange)
	s.mu.Unlock()

	s.syncMarkers()
	s.flyToBusiness()
}

// Stop unsubscribes and removes every tracked marker.
func (s *markerService) Stop() {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	markers := s.markers
	s.markers = nil
	s.lastBusinessID = ""
	s.mu.Unlock()

	for _, id := range markers {
		s.surface.RemoveMarker(id)
	}
}

func (s *markerService) onChange(change store.Change) {
	switch change.Kind {
	case store.ChangePeople, store.ChangeSelection:
		s.syncMarkers()
	case store.ChangeBusiness:
		s.flyToBusiness()
	}
}

// syncMarkers rebuilds the marker set from scratch: remove everything, then
// recreate one marker per person, flagged when selected. Rebuilding keeps
// marker state trivially consistent with the store.
func (s *markerService) syncMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.markers {
		s.surface.RemoveMarker(id)
	}
	s.markers = s.markers[:0]

	people := s.store.People()
	for _, person := range people {
		p := person
		id := s.surface.AddPersonMarker(p, s.store.IsSelected(p.ID), func(clicked entity.Person) {
			s.store.SetSelectedPerson(&clicked)
		})
		s.markers = append(s.markers, id)
	}

	s.logger.Debug("markers synchronized", slog.Int("count", len(s.markers)))
}

// flyToBusiness flies the camera only when the focused business actually
// changed; people and selection churn never moves the camera.
func (s *markerService) flyToBusiness() {
	business := s.store.CurrentBusiness()

	s.mu.Lock()
	if business == nil {
		s.lastBusinessID = ""
		s.mu.Unlock()

		return
	}
	if business.ID == s.lastBusinessID {
		s.mu.Unlock()

		return
	}
	s.lastBusinessID = business.ID
	s.mu.Unlock()

	center := orb.Point{business.Longitude, business.Latitude}
	s.surface.FlyTo(center, businessFlightZoom, businessFlightPitch, businessFlightBearing)
	s.store.SetMapState(store.MapStatePatch{
		Center:  &center,
		Zoom:    float64Ptr(businessFlightZoom),
		Pitch:   float64Ptr(businessFlightPitch),
		Bearing: float64Ptr(businessFlightBearing),
	})
}

func float64Ptr(v float64) *float64 {
	return &v
}
