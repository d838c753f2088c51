package impl

import (
	"log/slog"
	"sync"
	"time"

	"giftscout/internal/domain/entity"
	"giftscout/internal/store"
	"giftscout/internal/usecase"
)

type notificationService struct {
	store  *store.Store
	logger *slog.Logger

	mu          sync.Mutex
	timers      map[string]*time.Timer
	unsubscribe func()
}

// NewNotificationService creates the notification service with its reaper.
func NewNotificationService(st *store.Store, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		store:  st,
		logger: logger,
		timers: map[string]*time.Timer{},
	}
}

// Notify appends a notification. A zero duration makes it sticky.
func (s *notificationService) Notify(kind entity.NotificationKind, message string, duration time.Duration) entity.AppNotification {
	return s.store.AddNotification(kind, message, duration)
}

// Dismiss removes a notification immediately and cancels its reap timer.
func (s *notificationService) Dismiss(id string) {
	s.cancelTimer(id)
	s.store.RemoveNotification(id)
}

// Start subscribes to store changes and schedules removal for every
// notification carrying a duration. Already-present notifications are
// scheduled too.
func (s *notificationService) Start() {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.mu.Unlock()

		return
	}
	s.unsubscribe = s.store.Subscribe(func(change store.Change) {
		if change.Kind == store.ChangeNotifications {
			s.scheduleAll()
		}
	})
	s.mu.Unlock()

	s.scheduleAll()
}

// Stop cancels every pending dismissal and unsubscribes.
func (s *notificationService) Stop() {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
}

// scheduleAll arms a reap timer for each active notification with a duration.
// Sticky notifications (zero duration) stay until dismissed.
func (s *notificationService) scheduleAll() {
	for _, n := range s.store.Notifications() {
		if n.Duration <= 0 {
			continue
		}

		s.mu.Lock()
		if _, exists := s.timers[n.ID]; exists {
			s.mu.Unlock()

			continue
		}

		id := n.ID
		s.timers[id] = time.AfterFunc(n.Duration, func() {
			s.mu.Lock()
			delete(s.timers, id)
			s.mu.Unlock()

			s.store.RemoveNotification(id)
			s.logger.Debug("notification expired", slog.String("id", id))
		})
		s.mu.Unlock()
	}
}

func (s *notificationService) cancelTimer(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
}
