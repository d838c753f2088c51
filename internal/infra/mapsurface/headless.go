// Package mapsurface provides a headless MapSurface implementation. It keeps
// marker and camera state in memory so the orchestration core, which only
// issues commands, runs unchanged with or without a real renderer attached.
package mapsurface

import (
	"log/slog"
	"sync"

	"giftscout/config"
	"giftscout/internal/domain/entity"
	"giftscout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type marker struct {
	person  entity.Person
	onClick func(entity.Person)
}

// Surface is the headless map surface. A renderer integration replays its
// state; tests and the dev server drive it directly.
type Surface struct {
	logger *slog.Logger

	mu      sync.Mutex
	camera  entity.MapState
	markers map[service.MarkerID]marker

	// selected mirrors the flag handed to AddPersonMarker so a renderer
	// can restore marker styling from a snapshot.
	selected map[service.MarkerID]bool
}

// NewSurface seeds the camera from configuration.
func NewSurface(cfg *config.MapConfig, logger *slog.Logger) *Surface {
	camera := entity.MapState{}
	if cfg != nil {
		camera = entity.MapState{
			Center:  orb.Point{cfg.CenterLon, cfg.CenterLat},
			Zoom:    cfg.Zoom,
			Pitch:   cfg.Pitch,
			Bearing: cfg.Bearing,
		}
	}

	return &Surface{
		logger:   logger,
		camera:   camera,
		markers:  make(map[service.MarkerID]marker),
		selected: make(map[service.MarkerID]bool),
	}
}

// AddPersonMarker tracks a marker for the person and returns its id.
func (s *Surface) AddPersonMarker(person entity.Person, selected bool, onClick func(entity.Person)) service.MarkerID {
	id := service.MarkerID("marker-" + uuid.New().String())

	s.mu.Lock()
	s.markers[id] = marker{person: person, onClick: onClick}
	s.selected[id] = selected
	s.mu.Unlock()

	return id
}

// RemoveMarker drops a tracked marker. Unknown ids are ignored.
func (s *Surface) RemoveMarker(id service.MarkerID) {
	s.mu.Lock()
	delete(s.markers, id)
	delete(s.selected, id)
	s.mu.Unlock()
}

// FlyTo positions the camera. Headless, so the animation is instantaneous.
func (s *Surface) FlyTo(center orb.Point, zoom, pitch, bearing float64) {
	s.mu.Lock()
	s.camera = entity.MapState{Center: center, Zoom: zoom, Pitch: pitch, Bearing: bearing}
	s.mu.Unlock()

	s.logger.Debug("camera flight",
		slog.Float64("lon", center.Lon()),
		slog.Float64("lat", center.Lat()),
		slog.Float64("zoom", zoom),
	)
}

// Camera returns the current camera parameters.
func (s *Surface) Camera() entity.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.camera
}

// SetCamera positions the camera without animation.
func (s *Surface) SetCamera(state entity.MapState) {
	s.mu.Lock()
	s.camera = state
	s.mu.Unlock()
}

// Click simulates the operator clicking a marker, firing its callback.
// Returns false for unknown ids.
func (s *Surface) Click(id service.MarkerID) bool {
	s.mu.Lock()
	m, ok := s.markers[id]
	s.mu.Unlock()

	if !ok {
		return false
	}
	if m.onClick != nil {
		m.onClick(m.person)
	}

	return true
}

// MarkerCount reports how many markers are live.
func (s *Surface) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.markers)
}

// Selected reports the selection flag a marker was created with.
func (s *Surface) Selected(id service.MarkerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected[id]
}
