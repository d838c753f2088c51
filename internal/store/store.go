// Package store holds the application state shared by the search, gift and
// map orchestration services. All mutation goes through commands; reads go
// through snapshot accessors that copy mutable values out.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"giftscout/internal/domain/entity"
)

// ChangeKind identifies which slice of state a mutation touched.
type ChangeKind string

const (
	ChangeBusiness       ChangeKind = "business"
	ChangePeople         ChangeKind = "people"
	ChangeSelection      ChangeKind = "selection"
	ChangeFilters        ChangeKind = "filters"
	ChangePresets        ChangeKind = "presets"
	ChangeResultCount    ChangeKind = "resultCount"
	ChangeMapState       ChangeKind = "mapState"
	ChangeLoading        ChangeKind = "loading"
	ChangePanels         ChangeKind = "panels"
	ChangeSelectedPerson ChangeKind = "selectedPerson"
	ChangeNotifications  ChangeKind = "notifications"
	ChangeOrder          ChangeKind = "order"
)

// Change describes a single committed mutation.
type Change struct {
	Kind ChangeKind
}

// Listener receives committed changes. Listeners run outside the store lock
// and must not assume ordering relative to other listeners.
type Listener func(Change)

// Store is a mutex-guarded state container. The zero value is not usable;
// construct with New.
type Store struct {
	mu sync.RWMutex

	currentBusiness *entity.Business
	people          []entity.Person
	selected        entity.SelectedPeople
	selectedPerson  *entity.Person

	filters entity.SearchFilters
	presets []entity.FilterPreset

	filterResultCount *int

	mapState entity.MapState

	isLoading             bool
	showFilters           bool
	showGiftSelection     bool
	showOrderConfirmation bool

	notifications []entity.AppNotification
	currentOrder  *entity.GiftOrder

	listenerMu sync.RWMutex
	listeners  map[int]Listener
	nextListen int
}

// New builds an empty store with the given initial camera state.
func New(initial entity.MapState) *Store {
	return &Store{
		selected:  entity.SelectedPeople{},
		filters:   entity.SearchFilters{},
		mapState:  initial,
		listeners: map[int]Listener{},
	}
}

// Subscribe registers a listener and returns an unsubscribe func. The
// listener is invoked after each committed mutation, outside the state lock.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

func (s *Store) notify(kind ChangeKind) {
	s.listenerMu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.RUnlock()

	change := Change{Kind: kind}
	for _, fn := range fns {
		fn(change)
	}
}

// SetCurrentBusiness replaces the focused business. Passing nil clears it.
func (s *Store) SetCurrentBusiness(b *entity.Business) {
	s.mu.Lock()
	if b == nil {
		s.currentBusiness = nil
	} else {
		cloned := *b
		s.currentBusiness = &cloned
	}
	s.mu.Unlock()
	s.notify(ChangeBusiness)
}

// CurrentBusiness returns a copy of the focused business, or nil.
func (s *Store) CurrentBusiness() *entity.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentBusiness == nil {
		return nil
	}
	cloned := *s.currentBusiness
	return &cloned
}

// SetPeople replaces the discovered-people list. The selection set is left
// alone; stale selections simply stop rendering until cleared.
func (s *Store) SetPeople(people []entity.Person) {
	s.mu.Lock()
	s.people = append([]entity.Person(nil), people...)
	s.mu.Unlock()
	s.notify(ChangePeople)
}

// AddPeople appends to the discovered-people list.
func (s *Store) AddPeople(people []entity.Person) {
	if len(people) == 0 {
		return
	}
	s.mu.Lock()
	s.people = append(s.people, people...)
	s.mu.Unlock()
	s.notify(ChangePeople)
}

// People returns a copy of the discovered-people list.
func (s *Store) People() []entity.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Person(nil), s.people...)
}

// TogglePersonSelection adds the person to the selection set, or removes them
// if already present.
func (s *Store) TogglePersonSelection(p entity.Person) {
	s.mu.Lock()
	if _, ok := s.selected[p.ID]; ok {
		delete(s.selected, p.ID)
	} else {
		s.selected[p.ID] = p
	}
	s.mu.Unlock()
	s.notify(ChangeSelection)
}

// IsSelected reports whether the person id is in the selection set.
func (s *Store) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// SelectedPeople returns a copy of the selection set.
func (s *Store) SelectedPeople() entity.SelectedPeople {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(entity.SelectedPeople, len(s.selected))
	for id, p := range s.selected {
		out[id] = p
	}
	return out
}

// SelectionCount returns the number of selected people.
func (s *Store) SelectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// ClearSelection empties the selection set.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = entity.SelectedPeople{}
	s.mu.Unlock()
	s.notify(ChangeSelection)
}

// SetFilters merges a patch into the active filters. A dimension mapped to
// nil in the patch is removed; other dimensions are overwritten. Dimensions
// absent from the patch are untouched.
func (s *Store) SetFilters(patch entity.SearchFilters) {
	s.mu.Lock()
	for dim, value := range patch {
		if value == nil {
			delete(s.filters, dim)
			continue
		}
		s.filters[dim] = value
	}
	s.mu.Unlock()
	s.notify(ChangeFilters)
}

// ResetFilters clears every active filter dimension.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	s.filters = entity.SearchFilters{}
	s.mu.Unlock()
	s.notify(ChangeFilters)
}

// Filters returns a deep copy of the active filters.
func (s *Store) Filters() entity.SearchFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

// SaveFilterPreset snapshots the current filters under the given name and
// returns the stored preset.
func (s *Store) SaveFilterPreset(name, description string) entity.FilterPreset {
	now := time.Now()
	s.mu.Lock()
	preset := entity.FilterPreset{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Filters:     s.filters.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.presets = append(s.presets, preset)
	s.mu.Unlock()
	s.notify(ChangePresets)
	return preset
}

// LoadFilterPreset replaces the active filters with the preset's snapshot.
// Returns false when no preset has the id.
func (s *Store) LoadFilterPreset(id string) bool {
	s.mu.Lock()
	var found *entity.FilterPreset
	for i := range s.presets {
		if s.presets[i].ID == id {
			found = &s.presets[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return false
	}
	s.filters = found.Filters.Clone()
	s.mu.Unlock()
	s.notify(ChangeFilters)
	return true
}

// DeleteFilterPreset removes the preset with the id. Returns false when no
// preset has the id.
func (s *Store) DeleteFilterPreset(id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.presets {
		if s.presets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.presets = append(s.presets[:idx], s.presets[idx+1:]...)
	s.mu.Unlock()
	s.notify(ChangePresets)
	return true
}

// FilterPresets returns a copy of the saved presets.
func (s *Store) FilterPresets() []entity.FilterPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.FilterPreset, len(s.presets))
	for i, p := range s.presets {
		out[i] = p
		out[i].Filters = p.Filters.Clone()
	}
	return out
}

// SetFilterResultCount records the latest estimate. Nil means no estimate is
// available for the current filters.
func (s *Store) SetFilterResultCount(count *int) {
	s.mu.Lock()
	if count == nil {
		s.filterResultCount = nil
	} else {
		c := *count
		s.filterResultCount = &c
	}
	s.mu.Unlock()
	s.notify(ChangeResultCount)
}

// FilterResultCount returns the latest estimate, or nil when unknown.
func (s *Store) FilterResultCount() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.filterResultCount == nil {
		return nil
	}
	c := *s.filterResultCount
	return &c
}

// MapStatePatch carries partial camera updates; nil fields are untouched.
type MapStatePatch struct {
	Center  *orb.Point
	Zoom    *float64
	Pitch   *float64
	Bearing *float64
}

// SetMapState merges a partial camera update.
func (s *Store) SetMapState(patch MapStatePatch) {
	s.mu.Lock()
	if patch.Center != nil {
		s.mapState.Center = *patch.Center
	}
	if patch.Zoom != nil {
		s.mapState.Zoom = *patch.Zoom
	}
	if patch.Pitch != nil {
		s.mapState.Pitch = *patch.Pitch
	}
	if patch.Bearing != nil {
		s.mapState.Bearing = *patch.Bearing
	}
	s.mu.Unlock()
	s.notify(ChangeMapState)
}

// MapState returns the current camera state.
func (s *Store) MapState() entity.MapState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapState
}

// SetIsLoading flags an in-flight search.
func (s *Store) SetIsLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
	s.notify(ChangeLoading)
}

// IsLoading reports whether a search is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// SetShowFilters toggles the filter panel visibility.
func (s *Store) SetShowFilters(v bool) {
	s.mu.Lock()
	s.showFilters = v
	s.mu.Unlock()
	s.notify(ChangePanels)
}

// ShowFilters reports filter panel visibility.
func (s *Store) ShowFilters() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showFilters
}

// SetSelectedPerson sets the person detail focus. Passing nil clears it.
func (s *Store) SetSelectedPerson(p *entity.Person) {
	s.mu.Lock()
	if p == nil {
		s.selectedPerson = nil
	} else {
		cloned := *p
		s.selectedPerson = &cloned
	}
	s.mu.Unlock()
	s.notify(ChangeSelectedPerson)
}

// SelectedPerson returns a copy of the detail-focused person, or nil.
func (s *Store) SelectedPerson() *entity.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedPerson == nil {
		return nil
	}
	cloned := *s.selectedPerson
	return &cloned
}

// OpenGiftSelection shows the gift selection panel.
func (s *Store) OpenGiftSelection() {
	s.SetShowGiftSelection(true)
}

// CloseGiftSelection hides the gift selection panel.
func (s *Store) CloseGiftSelection() {
	s.SetShowGiftSelection(false)
}

// SetShowGiftSelection toggles the gift selection panel.
func (s *Store) SetShowGiftSelection(v bool) {
	s.mu.Lock()
	s.showGiftSelection = v
	s.mu.Unlock()
	s.notify(ChangePanels)
}

// ShowGiftSelection reports gift panel visibility.
func (s *Store) ShowGiftSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showGiftSelection
}

// ShowOrderConfirmation reports order confirmation visibility.
func (s *Store) ShowOrderConfirmation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showOrderConfirmation
}

// CreateOrder records the order and atomically opens the order confirmation
// while closing the gift selection panel. No observer can see one flipped
// without the other.
func (s *Store) CreateOrder(order entity.GiftOrder) {
	s.mu.Lock()
	cloned := order
	s.currentOrder = &cloned
	s.showOrderConfirmation = true
	s.showGiftSelection = false
	s.mu.Unlock()
	s.notify(ChangeOrder)
}

// CloseOrderConfirmation hides the confirmation. The current order is kept
// so the confirmation can be reopened for it.
func (s *Store) CloseOrderConfirmation() {
	s.mu.Lock()
	s.showOrderConfirmation = false
	s.mu.Unlock()
	s.notify(ChangeOrder)
}

// CurrentOrder returns a copy of the order being confirmed, or nil.
func (s *Store) CurrentOrder() *entity.GiftOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentOrder == nil {
		return nil
	}
	cloned := *s.currentOrder
	return &cloned
}

// AddNotification assigns an id and timestamp and appends the notification.
// Returns the stored value.
func (s *Store) AddNotification(kind entity.NotificationKind, message string, duration time.Duration) entity.AppNotification {
	n := entity.AppNotification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now(),
		Duration:  duration,
	}
	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()
	s.notify(ChangeNotifications)
	return n
}

// RemoveNotification drops the notification with the id. Unknown ids are a
// no-op.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.notifications = append(s.notifications[:idx], s.notifications[idx+1:]...)
	s.mu.Unlock()
	s.notify(ChangeNotifications)
}

// Notifications returns a copy of the active notifications.
func (s *Store) Notifications() []entity.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.AppNotification(nil), s.notifications...)
}
