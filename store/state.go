package store

import (
	"time"

	"exam-command-center/be/models"
)

// State is an immutable snapshot of everything the dashboard shows: the exam
// rooms with their owned cameras, and the per-subject behavior records.
type State struct {
	Rooms     []models.Room
	Behaviors map[string]models.SubjectBehavior
}

// Action is a single store mutation. Actions carry everything the reducer
// needs (timestamps and event ids included) so that reduce stays pure.
type Action interface {
	kind() string
}

type AddRoom struct {
	Room models.Room
}

type DeleteRooms struct {
	RoomIDs []uint
}

type AddCamera struct {
	RoomID uint
	Camera models.Camera
}

type DeleteCameras struct {
	RoomID    uint
	CameraIDs []uint
}

type LogSuspiciousBehavior struct {
	SubjectID   string
	Description string
	Timestamp   time.Time
	EventID     int64
}

type RecordBehavior struct {
	SubjectID string
	Timestamp time.Time
	EventID   int64
}

func (AddRoom) kind() string               { return "add_room" }
func (DeleteRooms) kind() string           { return "delete_rooms" }
func (AddCamera) kind() string             { return "add_camera" }
func (DeleteCameras) kind() string         { return "delete_cameras" }
func (LogSuspiciousBehavior) kind() string { return "log_suspicious_behavior" }
func (RecordBehavior) kind() string        { return "record_behavior" }

// reduce applies a single action and returns the next state. It never mutates
// its input: containers along the changed path are copied, everything else is
// shared structurally.
func reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddRoom:
		rooms := make([]models.Room, 0, len(state.Rooms)+1)
		rooms = append(rooms, state.Rooms...)
		rooms = append(rooms, a.Room)
		return State{Rooms: rooms, Behaviors: state.Behaviors}

	case DeleteRooms:
		drop := idSet(a.RoomIDs)
		rooms := make([]models.Room, 0, len(state.Rooms))
		for _, room := range state.Rooms {
			if !drop[room.ID] {
				rooms = append(rooms, room)
			}
		}
		return State{Rooms: rooms, Behaviors: state.Behaviors}

	case AddCamera:
		// Silent no-op when the room does not exist; callers validate first.
		rooms := make([]models.Room, len(state.Rooms))
		for i, room := range state.Rooms {
			if room.ID == a.RoomID {
				cameras := make([]models.Camera, 0, len(room.Cameras)+1)
				cameras = append(cameras, room.Cameras...)
				cameras = append(cameras, a.Camera)
				room.Cameras = cameras
			}
			rooms[i] = room
		}
		return State{Rooms: rooms, Behaviors: state.Behaviors}

	case DeleteCameras:
		// Scoped to the named room only; matching ids elsewhere are untouched.
		drop := idSet(a.CameraIDs)
		rooms := make([]models.Room, len(state.Rooms))
		for i, room := range state.Rooms {
			if room.ID == a.RoomID {
				cameras := make([]models.Camera, 0, len(room.Cameras))
				for _, cam := range room.Cameras {
					if !drop[cam.ID] {
						cameras = append(cameras, cam)
					}
				}
				room.Cameras = cameras
			}
			rooms[i] = room
		}
		return State{Rooms: rooms, Behaviors: state.Behaviors}

	case LogSuspiciousBehavior:
		event := models.BehaviorEvent{
			ID:          a.EventID,
			Kind:        models.BehaviorSuspicious,
			Timestamp:   a.Timestamp,
			Description: a.Description,
		}
		return State{
			Rooms:     state.Rooms,
			Behaviors: appendEvent(state.Behaviors, a.SubjectID, event, 1),
		}

	case RecordBehavior:
		event := models.BehaviorEvent{
			ID:          a.EventID,
			Kind:        models.BehaviorRecording,
			Timestamp:   a.Timestamp,
			Description: models.RecordingDescription,
		}
		return State{
			Rooms:     state.Rooms,
			Behaviors: appendEvent(state.Behaviors, a.SubjectID, event, 0),
		}
	}

	return state
}

// appendEvent copies the behaviors map, appends event to the subject's log
// (creating the record on first use) and bumps the count by delta.
func appendEvent(behaviors map[string]models.SubjectBehavior, subjectID string, event models.BehaviorEvent, delta int) map[string]models.SubjectBehavior {
	next := make(map[string]models.SubjectBehavior, len(behaviors)+1)
	for id, b := range behaviors {
		next[id] = b
	}

	current := next[subjectID] // zero value on first use: count 0, no events
	events := make([]models.BehaviorEvent, 0, len(current.Events)+1)
	events = append(events, current.Events...)
	events = append(events, event)

	next[subjectID] = models.SubjectBehavior{
		Count:  current.Count + delta,
		Events: events,
	}
	return next
}

func idSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
