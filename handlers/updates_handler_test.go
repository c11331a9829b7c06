package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"exam-command-center/be/models"
	"exam-command-center/be/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatesStream(t *testing.T) {
	st := store.NewWithState(store.SeedState())
	server := httptest.NewServer(newTestRouter(st, nil))
	defer server.Close()

	wsURL := strings.Replace(server.URL, "http://", "ws://", 1) + "/api/v1/ws/updates"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the handler a moment to register its subscription
	time.Sleep(50 * time.Millisecond)

	st.AddRoom(models.Room{ID: 6, Name: "Room 203"})
	st.LogSuspiciousBehavior("student-001", "")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first store.ChangeEvent
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, store.ChangeEvent{Action: "add_room", RoomID: 6}, first)

	var second store.ChangeEvent
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "log_suspicious_behavior", second.Action)
	assert.Equal(t, "student-001", second.SubjectID)
}
