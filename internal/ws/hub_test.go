package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestNotifier_BroadcastsJobEvent(t *testing.T) {
	h := startHub(t)
	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)
	waitForClients(t, h, 1)

	n := NewNotifier(h)
	n.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	id := uuid.New()
	n.NotifyJob(context.Background(), "job_closed", id)

	select {
	case msg := <-c.send:
		var evt JobEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, "job_closed", evt.Type)
		assert.Equal(t, id.String(), evt.JobID)
		assert.Equal(t, "2025-03-01T12:00:00Z", evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := startHub(t)
	slow := &Client{hub: h, send: make(chan []byte)}
	h.Register(slow)
	waitForClients(t, h, 1)

	h.Broadcast([]byte(`{}`))
	waitForClients(t, h, 0)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestNotifier_NilSafe(t *testing.T) {
	var n *Notifier
	n.NotifyJob(context.Background(), "job_created", uuid.New())
	NewNotifier(nil).NotifyJob(context.Background(), "job_created", uuid.New())
}

func TestHub_RegisterAndUnregisterReturnAfterShutdown(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for range 2 * cap(h.unregister) {
			h.Unregister(&Client{hub: h, send: make(chan []byte)})
		}
		late := &Client{hub: h, send: make(chan []byte, 1)}
		h.Register(late)
		_, open := <-late.send
		assert.False(t, open, "late client is closed instead of queued")
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after Run returned")
	}
	assert.Equal(t, 0, h.ClientCount())
}
