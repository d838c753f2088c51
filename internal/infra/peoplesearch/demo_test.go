package peoplesearch

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftscout/config"
)

func TestDemoGenerator_Reproducible(t *testing.T) {
	gen := NewDemoGenerator(&config.SearchConfig{
		DemoCount:     20,
		DemoJitterDeg: 0.005,
		DemoSeed:      1,
	})
	center := orb.Point{-74.006, 40.7128}

	first := gen.GeneratePeople(center)
	second := gen.GeneratePeople(center)

	require.Len(t, first, 20)
	assert.Equal(t, first, second, "same seed must yield the same people")
}

func TestDemoGenerator_RespectsJitterBound(t *testing.T) {
	const jitter = 0.01
	gen := NewDemoGenerator(&config.SearchConfig{
		DemoCount:     50,
		DemoJitterDeg: jitter,
		DemoSeed:      7,
	})
	center := orb.Point{121.5654, 25.033}

	people := gen.GeneratePeople(center)

	require.Len(t, people, 50)
	for _, p := range people {
		assert.InDelta(t, center.Lat(), p.Latitude, jitter, "person %s latitude out of bounds", p.ID)
		assert.InDelta(t, center.Lon(), p.Longitude, jitter, "person %s longitude out of bounds", p.ID)
	}
}

func TestDemoGenerator_StableIdentities(t *testing.T) {
	gen := NewDemoGenerator(&config.SearchConfig{
		DemoCount:     3,
		DemoJitterDeg: 0.005,
		DemoSeed:      1,
	})

	people := gen.GeneratePeople(orb.Point{0.1, 0.1})

	require.Len(t, people, 3)
	assert.Equal(t, "demo-person-1", people[0].ID)
	assert.Equal(t, "demo-person-2", people[1].ID)
	assert.Equal(t, "demo-person-3", people[2].ID)
	for _, p := range people {
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.NotEmpty(t, p.Interests)
	}
}
