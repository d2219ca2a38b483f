package websocket

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-dashboard/domain/models"
)

type fakeConn struct {
	mu      sync.Mutex
	written []Message
	fail    bool
	closed  bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.written = append(f.written, v.(Message))
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestNotifyReachesOnlyTheSession(t *testing.T) {
	m := NewManager()
	a, b := uuid.New(), uuid.New()
	connA1, connA2, connB := &fakeConn{}, &fakeConn{}, &fakeConn{}

	m.RegisterClient(connA1, a)
	m.RegisterClient(connA2, a)
	m.RegisterClient(connB, b)
	assert.Equal(t, 3, m.ConnectionCount())

	m.Notify(a, models.NewNotification("Person updated", "Alexa has been successfully updated."))

	require.Len(t, connA1.written, 1)
	require.Len(t, connA2.written, 1)
	assert.Empty(t, connB.written)

	msg := connA1.written[0]
	assert.Equal(t, MessageTypeNotification, msg.Type)
	n := msg.Data.(models.Notification)
	assert.Equal(t, "Person updated", n.Title)
	assert.Equal(t, models.NotificationDefault, n.Variant)
}

func TestFailedWriteDropsConnection(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	bad := &fakeConn{fail: true}
	m.RegisterClient(bad, id)

	m.Notify(id, models.NewErrorNotification("Failed to update person. Please try again."))

	assert.True(t, bad.closed)
	assert.Equal(t, 0, m.ConnectionCount())
}

func TestDisconnectSession(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	conn := &fakeConn{}
	m.RegisterClient(conn, id)

	m.DisconnectSession(id)

	assert.True(t, conn.closed)
	assert.Equal(t, 0, m.ConnectionCount())
	m.Notify(id, models.NewNotification("x", "y"))
	assert.Empty(t, conn.written)
}
