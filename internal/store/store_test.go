package store

import (
	"sync"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftscout/internal/domain/entity"
)

func newTestStore() *Store {
	return New(entity.MapState{
		Center:  orb.Point{-74.006, 40.7128},
		Zoom:    15,
		Pitch:   60,
		Bearing: 0,
	})
}

func TestStore_TogglePersonSelection(t *testing.T) {
	s := newTestStore()
	p := entity.Person{ID: "p1", FirstName: "Ada"}

	s.TogglePersonSelection(p)
	assert.True(t, s.IsSelected("p1"))
	assert.Equal(t, 1, s.SelectionCount())

	s.TogglePersonSelection(p)
	assert.False(t, s.IsSelected("p1"))
	assert.Equal(t, 0, s.SelectionCount())
}

func TestStore_SetPeopleKeepsSelection(t *testing.T) {
	s := newTestStore()
	p := entity.Person{ID: "p1"}
	s.SetPeople([]entity.Person{p, {ID: "p2"}})
	s.TogglePersonSelection(p)

	s.SetPeople([]entity.Person{{ID: "p3"}})

	assert.True(t, s.IsSelected("p1"), "selection should survive a people replacement")
	assert.Len(t, s.People(), 1)
}

func TestStore_SetFiltersPatchSemantics(t *testing.T) {
	s := newTestStore()

	s.SetFilters(entity.SearchFilters{
		entity.FilterGender:      "female",
		entity.FilterHomeowner:   true,
		entity.FilterOccupation: []string{"Engineer"},
	})
	s.SetFilters(entity.SearchFilters{
		entity.FilterGender:    "male",
		entity.FilterHomeowner: nil,
	})

	got := s.Filters()
	assert.Equal(t, "male", got[entity.FilterGender])
	_, hasHomeOwner := got[entity.FilterHomeowner]
	assert.False(t, hasHomeOwner, "nil patch value should clear the dimension")
	assert.Equal(t, []string{"Engineer"}, got[entity.FilterOccupation], "untouched dimension should persist")
}

func TestStore_FiltersReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.SetFilters(entity.SearchFilters{entity.FilterInterests: []string{"Golf"}})

	got := s.Filters()
	got[entity.FilterGender] = "male"
	if slice, ok := got[entity.FilterInterests].([]string); ok {
		slice[0] = "Tennis"
	}

	fresh := s.Filters()
	_, leaked := fresh[entity.FilterGender]
	assert.False(t, leaked)
	assert.Equal(t, []string{"Golf"}, fresh[entity.FilterInterests])
}

func TestStore_PresetRoundTrip(t *testing.T) {
	s := newTestStore()
	s.SetFilters(entity.SearchFilters{entity.FilterHomeowner: true})

	preset := s.SaveFilterPreset("homeowners", "people who own their home")
	require.NotEmpty(t, preset.ID)
	require.False(t, preset.CreatedAt.IsZero())

	s.ResetFilters()
	require.Empty(t, s.Filters())

	require.True(t, s.LoadFilterPreset(preset.ID))
	assert.Equal(t, true, s.Filters()[entity.FilterHomeowner])

	assert.False(t, s.LoadFilterPreset("missing"))
	assert.True(t, s.DeleteFilterPreset(preset.ID))
	assert.False(t, s.DeleteFilterPreset(preset.ID))
	assert.Empty(t, s.FilterPresets())
}

func TestStore_PresetSnapshotIsImmutable(t *testing.T) {
	s := newTestStore()
	s.SetFilters(entity.SearchFilters{entity.FilterGender: "female"})
	preset := s.SaveFilterPreset("snap", "")

	s.SetFilters(entity.SearchFilters{entity.FilterGender: "male"})

	require.True(t, s.LoadFilterPreset(preset.ID))
	assert.Equal(t, "female", s.Filters()[entity.FilterGender])
}

func TestStore_FilterResultCount(t *testing.T) {
	s := newTestStore()
	assert.Nil(t, s.FilterResultCount())

	count := 42
	s.SetFilterResultCount(&count)
	got := s.FilterResultCount()
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)

	count = 99
	assert.Equal(t, 42, *s.FilterResultCount(), "stored count must not alias the caller's int")

	s.SetFilterResultCount(nil)
	assert.Nil(t, s.FilterResultCount())
}

func TestStore_SetMapStatePartial(t *testing.T) {
	s := newTestStore()

	zoom := 16.0
	s.SetMapState(MapStatePatch{Zoom: &zoom})

	got := s.MapState()
	assert.Equal(t, 16.0, got.Zoom)
	assert.Equal(t, orb.Point{-74.006, 40.7128}, got.Center, "unpatched fields keep their values")
	assert.Equal(t, 60.0, got.Pitch)
}

func TestStore_CreateOrderAtomicity(t *testing.T) {
	s := newTestStore()
	s.OpenGiftSelection()
	require.True(t, s.ShowGiftSelection())

	s.CreateOrder(entity.GiftOrder{ID: "o1", Status: entity.OrderStatusSent})

	assert.True(t, s.ShowOrderConfirmation())
	assert.False(t, s.ShowGiftSelection())
	require.NotNil(t, s.CurrentOrder())
	assert.Equal(t, "o1", s.CurrentOrder().ID)

	s.CloseOrderConfirmation()
	assert.False(t, s.ShowOrderConfirmation())
}

func TestStore_CloseOrderConfirmationKeepsOrder(t *testing.T) {
	s := newTestStore()
	s.CreateOrder(entity.GiftOrder{ID: "order-1", Status: entity.OrderStatusProcessing})

	s.CloseOrderConfirmation()

	assert.False(t, s.ShowOrderConfirmation())
	require.NotNil(t, s.CurrentOrder(), "closing the confirmation must not drop the order")
	assert.Equal(t, "order-1", s.CurrentOrder().ID)
}

func TestStore_Notifications(t *testing.T) {
	s := newTestStore()

	n := s.AddNotification(entity.NotificationSuccess, "gifts sent", 3*time.Second)
	require.NotEmpty(t, n.ID)
	require.False(t, n.Timestamp.IsZero())
	assert.Equal(t, 3*time.Second, n.Duration)

	s.RemoveNotification("unknown")
	assert.Len(t, s.Notifications(), 1)

	s.RemoveNotification(n.ID)
	assert.Empty(t, s.Notifications())
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := newTestStore()

	var mu sync.Mutex
	var kinds []ChangeKind
	unsubscribe := s.Subscribe(func(c Change) {
		mu.Lock()
		kinds = append(kinds, c.Kind)
		mu.Unlock()
	})

	s.SetIsLoading(true)
	s.SetCurrentBusiness(&entity.Business{ID: "b1"})

	mu.Lock()
	assert.Equal(t, []ChangeKind{ChangeLoading, ChangeBusiness}, kinds)
	mu.Unlock()

	unsubscribe()
	s.SetIsLoading(false)

	mu.Lock()
	assert.Len(t, kinds, 2)
	mu.Unlock()
}

func TestStore_ListenerMayReenterStore(t *testing.T) {
	s := newTestStore()

	done := make(chan struct{})
	var once sync.Once
	s.Subscribe(func(c Change) {
		if c.Kind == ChangeSelection {
			// Re-entrant reads must not deadlock.
			_ = s.SelectionCount()
			once.Do(func() { close(done) })
		}
	})

	s.TogglePersonSelection(entity.Person{ID: "p1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener never ran")
	}
}
