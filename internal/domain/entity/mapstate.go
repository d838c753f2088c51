package entity

import (
	"github.com/paulmach/orb"
)

// MapState holds the camera parameters of the map surface. The map surface is
// the authority while rendering; the store is the authority when initializing
// or when other components need a consistent read.
type MapState struct {
	Center  orb.Point `json:"center"` // [longitude, latitude]
	Zoom    float64   `json:"zoom"`
	Pitch   float64   `json:"pitch"`
	Bearing float64   `json:"bearing"`
}
