package usecase

// MarkerSyncUsecase keeps the map surface consistent with the store: one
// marker per discovered person, selection flags, and a camera flight when the
// focused business changes.
type MarkerSyncUsecase interface {
	// Start subscribes to store changes and performs an initial sync.
	Start()

	// Stop unsubscribes and removes all tracked markers.
	Stop()
}
