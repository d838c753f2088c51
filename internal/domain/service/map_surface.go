package service

import (
	"giftscout/internal/domain/entity"

	"github.com/paulmach/orb"
)

// MarkerID identifies one live marker on the map surface.
type MarkerID string

// MapSurface abstracts the map renderer. The renderer owns drawing and camera
// animation; the core only issues marker and camera commands and absorbs
// move-end events through the store.
type MapSurface interface {
	// AddPersonMarker creates a marker for the person, visually flagged
	// when selected. onClick fires when the operator clicks the marker.
	AddPersonMarker(person entity.Person, selected bool, onClick func(entity.Person)) MarkerID

	// RemoveMarker removes a marker previously returned by
	// AddPersonMarker. Unknown ids are ignored.
	RemoveMarker(id MarkerID)

	// FlyTo animates the camera to the given center.
	FlyTo(center orb.Point, zoom, pitch, bearing float64)

	// Camera returns the renderer's current camera parameters.
	Camera() entity.MapState

	// SetCamera positions the camera without animation, used on init.
	SetCamera(state entity.MapState)
}
