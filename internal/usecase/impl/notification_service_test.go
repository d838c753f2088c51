package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftscout/internal/domain/entity"
)

func TestNotificationService_AutoDismiss(t *testing.T) {
	st := testStore()
	svc := NewNotificationService(st, testLogger())
	svc.Start()
	defer svc.Stop()

	svc.Notify(entity.NotificationSuccess, "gifts sent", 20*time.Millisecond)
	require.Len(t, st.Notifications(), 1)

	require.Eventually(t, func() bool {
		return len(st.Notifications()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationService_StickyStays(t *testing.T) {
	st := testStore()
	svc := NewNotificationService(st, testLogger())
	svc.Start()
	defer svc.Stop()

	n := svc.Notify(entity.NotificationError, "provider unreachable", 0)

	time.Sleep(50 * time.Millisecond)
	require.Len(t, st.Notifications(), 1, "zero duration means sticky")

	svc.Dismiss(n.ID)
	assert.Empty(t, st.Notifications())
}

func TestNotificationService_DismissCancelsTimer(t *testing.T) {
	st := testStore()
	svc := NewNotificationService(st, testLogger())
	svc.Start()
	defer svc.Stop()

	n := svc.Notify(entity.NotificationInfo, "searching", 30*time.Millisecond)
	svc.Dismiss(n.ID)
	assert.Empty(t, st.Notifications())

	// The canceled timer must not fire against a reused store.
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, st.Notifications())
}

func TestNotificationService_SchedulesPreexisting(t *testing.T) {
	st := testStore()
	st.AddNotification(entity.NotificationInfo, "from before start", 20*time.Millisecond)

	svc := NewNotificationService(st, testLogger())
	svc.Start()
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return len(st.Notifications()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationService_StopCancelsPending(t *testing.T) {
	st := testStore()
	svc := NewNotificationService(st, testLogger())
	svc.Start()

	svc.Notify(entity.NotificationInfo, "pending", 30*time.Millisecond)
	svc.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, st.Notifications(), 1, "stopped reaper leaves notifications alone")
}
