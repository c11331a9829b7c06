package store

import (
	"fmt"
	"testing"

	"exam-command-center/be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRoomState() State {
	return State{
		Rooms: []models.Room{
			{ID: 1, Name: "Room 101", Capacity: 80, Floor: 1, Status: models.RoomActive, Cameras: []models.Camera{
				{ID: 1, Name: "CAM 1", Status: models.CameraOnline},
				{ID: 2, Name: "CAM 2", Status: models.CameraOffline},
			}},
			{ID: 2, Name: "Room 102", Capacity: 80, Floor: 1, Status: models.RoomActive, Cameras: []models.Camera{
				{ID: 3, Name: "CAM 3", Status: models.CameraOnline},
			}},
		},
		Behaviors: map[string]models.SubjectBehavior{},
	}
}

func TestAlertLevelThresholds(t *testing.T) {
	cases := []struct {
		count int
		want  models.AlertLevel
	}{
		{0, models.AlertNone},
		{1, models.AlertOrange},
		{4, models.AlertOrange},
		{5, models.AlertRed},
		{17, models.AlertRed},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("count_%d", tc.count), func(t *testing.T) {
			assert.Equal(t, tc.want, models.AlertLevelForCount(tc.count))
		})
	}
}

func TestAlertLevelUnknownSubject(t *testing.T) {
	st := New()
	assert.Equal(t, models.AlertNone, st.AlertLevel("student-404"))
}

func TestAlertLevelFollowsCount(t *testing.T) {
	st := New()

	for i := 0; i < 4; i++ {
		st.LogSuspiciousBehavior("student-001", "")
	}
	assert.Equal(t, models.AlertOrange, st.AlertLevel("student-001"))

	st.LogSuspiciousBehavior("student-001", "")
	assert.Equal(t, models.AlertRed, st.AlertLevel("student-001"))
}

func TestLogSuspiciousBehavior(t *testing.T) {
	st := New()

	const n = 7
	for i := 0; i < n; i++ {
		st.LogSuspiciousBehavior("student-001", "")
	}

	behavior, ok := st.Behavior("student-001")
	require.True(t, ok)
	assert.Equal(t, n, behavior.Count)
	require.Len(t, behavior.Events, n)

	seen := map[int64]bool{}
	for _, event := range behavior.Events {
		assert.Equal(t, models.BehaviorSuspicious, event.Kind)
		assert.Equal(t, models.DefaultSuspiciousDescription, event.Description)
		assert.False(t, seen[event.ID], "event ids must be unique")
		seen[event.ID] = true
	}
}

func TestLogSuspiciousBehaviorCustomDescription(t *testing.T) {
	st := New()
	st.LogSuspiciousBehavior("student-002", "Phone visible under desk")

	behavior, _ := st.Behavior("student-002")
	require.Len(t, behavior.Events, 1)
	assert.Equal(t, "Phone visible under desk", behavior.Events[0].Description)
}

func TestRecordBehaviorDoesNotCount(t *testing.T) {
	st := New()
	st.LogSuspiciousBehavior("student-001", "")

	st.RecordBehavior("student-001")
	st.RecordBehavior("student-001")

	behavior, _ := st.Behavior("student-001")
	assert.Equal(t, 1, behavior.Count)
	require.Len(t, behavior.Events, 3)
	assert.Equal(t, models.BehaviorRecording, behavior.Events[1].Kind)
	assert.Equal(t, models.RecordingDescription, behavior.Events[1].Description)
}

func TestRecordBehaviorCreatesRecord(t *testing.T) {
	st := New()
	st.RecordBehavior("student-009")

	behavior, ok := st.Behavior("student-009")
	require.True(t, ok)
	assert.Equal(t, 0, behavior.Count)
	assert.Len(t, behavior.Events, 1)
	assert.Equal(t, models.AlertNone, st.AlertLevel("student-009"))
}

func TestAddRoomDeleteRoomsRoundTrip(t *testing.T) {
	st := NewWithState(twoRoomState())
	before := st.Rooms()

	id := st.NextRoomID()
	st.AddRoom(models.Room{ID: id, Name: "Room 103", Status: models.RoomActive})
	require.Len(t, st.Rooms(), 3)

	st.DeleteRooms([]uint{id})
	assert.Equal(t, before, st.Rooms())
}

func TestDeleteRoomsIgnoresUnknownIDs(t *testing.T) {
	st := NewWithState(twoRoomState())
	st.DeleteRooms([]uint{42, 99})
	assert.Len(t, st.Rooms(), 2)
}

func TestDeleteRoomsRemovesOwnedCameras(t *testing.T) {
	st := NewWithState(twoRoomState())
	st.DeleteRooms([]uint{1})

	rooms := st.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, uint(2), rooms[0].ID)
	_, ok := st.Camera(1, 1)
	assert.False(t, ok)
}

func TestAddCameraUnknownRoomIsNoOp(t *testing.T) {
	st := NewWithState(twoRoomState())
	st.AddCamera(42, models.Camera{ID: 9, Name: "CAM 9", Status: models.CameraOffline})

	for _, room := range st.Rooms() {
		for _, cam := range room.Cameras {
			assert.NotEqual(t, uint(9), cam.ID)
		}
	}
}

func TestDeleteCamerasScopedToRoom(t *testing.T) {
	// Duplicate ids across rooms should never happen under global id
	// assignment, but deletion must stay scoped even if they do.
	st := NewWithState(State{
		Rooms: []models.Room{
			{ID: 1, Name: "Room 101", Cameras: []models.Camera{{ID: 1, Name: "CAM A"}}},
			{ID: 2, Name: "Room 102", Cameras: []models.Camera{{ID: 1, Name: "CAM B"}}},
		},
	})

	st.DeleteCameras(1, []uint{1})

	_, ok := st.Camera(1, 1)
	assert.False(t, ok)
	cam, ok := st.Camera(2, 1)
	require.True(t, ok)
	assert.Equal(t, "CAM B", cam.Name)
}

func TestEmptyStoreScenario(t *testing.T) {
	st := New()

	st.AddRoom(models.Room{ID: 1, Name: "Room 101", Cameras: []models.Camera{}})
	st.AddCamera(1, models.Camera{ID: 1, Name: "CAM 1", Status: models.CameraOffline})

	rooms := st.Rooms()
	require.Len(t, rooms, 1)
	require.Len(t, rooms[0].Cameras, 1)
	assert.Equal(t, "CAM 1", rooms[0].Cameras[0].Name)
	assert.Equal(t, models.CameraOffline, rooms[0].Cameras[0].Status)
}

func TestNextIDsAreGlobalMaxPlusOne(t *testing.T) {
	st := NewWithState(twoRoomState())
	assert.Equal(t, uint(3), st.NextRoomID())
	assert.Equal(t, uint(4), st.NextCameraID())

	empty := New()
	assert.Equal(t, uint(1), empty.NextRoomID())
	assert.Equal(t, uint(1), empty.NextCameraID())
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := twoRoomState()
	state.Behaviors["student-001"] = models.SubjectBehavior{Count: 1, Events: []models.BehaviorEvent{}}

	next := reduce(state, AddCamera{RoomID: 1, Camera: models.Camera{ID: 9, Name: "CAM 9"}})
	assert.Len(t, state.Rooms[0].Cameras, 2)
	assert.Len(t, next.Rooms[0].Cameras, 3)

	next = reduce(state, LogSuspiciousBehavior{SubjectID: "student-001", Description: "x", EventID: 1})
	assert.Equal(t, 1, state.Behaviors["student-001"].Count)
	assert.Equal(t, 2, next.Behaviors["student-001"].Count)
}

func TestReadsReturnSnapshots(t *testing.T) {
	st := NewWithState(twoRoomState())

	rooms := st.Rooms()
	rooms[0].Cameras[0].Name = "tampered"
	rooms[0].Name = "tampered"

	fresh, _ := st.Room(1)
	assert.Equal(t, "Room 101", fresh.Name)
	assert.Equal(t, "CAM 1", fresh.Cameras[0].Name)
}

func TestSubscribeReceivesOneEventPerDispatch(t *testing.T) {
	st := NewWithState(twoRoomState())
	events, unsubscribe := st.Subscribe()
	defer unsubscribe()

	st.AddRoom(models.Room{ID: 3, Name: "Room 103"})
	st.LogSuspiciousBehavior("student-001", "")
	st.DeleteRooms([]uint{3})

	assert.Equal(t, ChangeEvent{Action: "add_room", RoomID: 3}, <-events)
	assert.Equal(t, ChangeEvent{Action: "log_suspicious_behavior", SubjectID: "student-001"}, <-events)
	assert.Equal(t, ChangeEvent{Action: "delete_rooms"}, <-events)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	st := New()
	events, unsubscribe := st.Subscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)

	// Dispatch after unsubscribe must not panic
	st.AddRoom(models.Room{ID: 1, Name: "Room 101"})
}

func TestSeedState(t *testing.T) {
	st := NewWithState(SeedState())

	rooms := st.Rooms()
	require.Len(t, rooms, 5)

	total := 0
	seen := map[uint]bool{}
	for _, room := range rooms {
		for _, cam := range room.Cameras {
			assert.False(t, seen[cam.ID], "camera ids must be globally unique")
			seen[cam.ID] = true
			assert.True(t, cam.Status.Valid())
			total++
		}
	}
	assert.Equal(t, 8, total)

	assert.Equal(t, models.AlertOrange, st.AlertLevel("student-001"))
	assert.Equal(t, models.AlertRed, st.AlertLevel("student-002"))
	assert.Equal(t, models.AlertNone, st.AlertLevel("student-005"))
}
