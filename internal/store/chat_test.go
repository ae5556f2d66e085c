package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocst/internal/model"
)

func TestChatLog_Append(t *testing.T) {
	l := NewChatLog()

	msg, err := l.Append("unit12", model.RoleMobile, "10-4, on my way")
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "unit12", msg.Username)
	assert.Equal(t, model.RoleMobile, msg.DeviceType)
	assert.Equal(t, "10-4, on my way", msg.Message)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestChatLog_AppendEmpty(t *testing.T) {
	l := NewChatLog()

	_, err := l.Append("unit12", model.RoleMobile, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = l.Append("unit12", model.RoleMobile, "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	assert.Empty(t, l.Snapshot(), "rejected messages must not be logged")
}

func TestChatLog_Order(t *testing.T) {
	l := NewChatLog()

	for i := 0; i < 10; i++ {
		_, err := l.Append("central", model.RoleDispatch, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	snap := l.Snapshot()
	require.Len(t, snap, 10)
	for i, msg := range snap {
		assert.Equal(t, fmt.Sprintf("msg %d", i), msg.Message)
	}
}

func TestChatLog_Clear(t *testing.T) {
	l := NewChatLog()

	l.Clear()
	assert.Empty(t, l.Snapshot())

	_, err := l.Append("unit12", model.RoleMobile, "hello")
	require.NoError(t, err)

	l.Clear()
	assert.Empty(t, l.Snapshot())
}
