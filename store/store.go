package store

import (
	"sync"
	"time"

	"exam-command-center/be/models"
)

// ChangeEvent describes one applied mutation. Subscribers use it to refresh
// whatever view they are holding.
type ChangeEvent struct {
	Action    string `json:"action"`
	RoomID    uint   `json:"room_id,omitempty"`
	SubjectID string `json:"subject_id,omitempty"`
}

// Store is the single source of truth for rooms, cameras and behavior logs
// for the lifetime of the process. All mutations go through Dispatch, which
// serializes them and applies the pure reducer; readers get snapshot copies
// and never share mutable state with the store.
type Store struct {
	mu          sync.RWMutex
	state       State
	nextEventID int64

	subMu   sync.Mutex
	subs    map[int]chan ChangeEvent
	nextSub int
}

// New returns an empty store.
func New() *Store {
	return NewWithState(State{Behaviors: map[string]models.SubjectBehavior{}})
}

// NewWithState returns a store seeded with the given state.
func NewWithState(state State) *Store {
	if state.Behaviors == nil {
		state.Behaviors = map[string]models.SubjectBehavior{}
	}
	return &Store{
		state: state,
		// Event ids stay timestamp-flavored but are strictly increasing even
		// when events land within the same millisecond.
		nextEventID: time.Now().UnixMilli(),
		subs:        make(map[int]chan ChangeEvent),
	}
}

func (s *Store) dispatch(action Action, change ChangeEvent) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	s.mu.Unlock()
	s.notify(change)
}

// AddRoom appends a room. The caller pre-generates a unique id (NextRoomID).
func (s *Store) AddRoom(room models.Room) {
	if room.Cameras == nil {
		room.Cameras = []models.Camera{}
	}
	s.dispatch(AddRoom{Room: room}, ChangeEvent{Action: "add_room", RoomID: room.ID})
}

// DeleteRooms removes every room whose id is in roomIDs. Ids not present are
// ignored. Owned cameras go with their room.
func (s *Store) DeleteRooms(roomIDs []uint) {
	s.dispatch(DeleteRooms{RoomIDs: roomIDs}, ChangeEvent{Action: "delete_rooms"})
}

// AddCamera appends a camera to the named room. Unknown rooms are a silent
// no-op; callers resolve the room and report "Selected room not found" before
// calling.
func (s *Store) AddCamera(roomID uint, camera models.Camera) {
	s.dispatch(AddCamera{RoomID: roomID, Camera: camera}, ChangeEvent{Action: "add_camera", RoomID: roomID})
}

// DeleteCameras removes the matching cameras from the named room only.
func (s *Store) DeleteCameras(roomID uint, cameraIDs []uint) {
	s.dispatch(DeleteCameras{RoomID: roomID, CameraIDs: cameraIDs}, ChangeEvent{Action: "delete_cameras", RoomID: roomID})
}

// LogSuspiciousBehavior increments the subject's count and appends a
// suspicious event. An empty description falls back to the default.
func (s *Store) LogSuspiciousBehavior(subjectID, description string) {
	if description == "" {
		description = models.DefaultSuspiciousDescription
	}
	s.mu.Lock()
	eventID := s.nextEventID
	s.nextEventID++
	s.state = reduce(s.state, LogSuspiciousBehavior{
		SubjectID:   subjectID,
		Description: description,
		Timestamp:   time.Now().UTC(),
		EventID:     eventID,
	})
	s.mu.Unlock()
	s.notify(ChangeEvent{Action: "log_suspicious_behavior", SubjectID: subjectID})
}

// RecordBehavior appends a recording event without touching the count.
func (s *Store) RecordBehavior(subjectID string) {
	s.mu.Lock()
	eventID := s.nextEventID
	s.nextEventID++
	s.state = reduce(s.state, RecordBehavior{
		SubjectID: subjectID,
		Timestamp: time.Now().UTC(),
		EventID:   eventID,
	})
	s.mu.Unlock()
	s.notify(ChangeEvent{Action: "record_behavior", SubjectID: subjectID})
}

// AlertLevel derives the subject's alert level from its current count.
// Unknown subjects are AlertNone.
func (s *Store) AlertLevel(subjectID string) models.AlertLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.AlertLevelForCount(s.state.Behaviors[subjectID].Count)
}

// Rooms returns a snapshot copy of all rooms.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]models.Room, len(s.state.Rooms))
	for i, room := range s.state.Rooms {
		rooms[i] = copyRoom(room)
	}
	return rooms
}

// Room returns a snapshot copy of one room.
func (s *Store) Room(id uint) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.state.Rooms {
		if room.ID == id {
			return copyRoom(room), true
		}
	}
	return models.Room{}, false
}

// Camera returns a camera scoped to its room.
func (s *Store) Camera(roomID, cameraID uint) (models.Camera, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.state.Rooms {
		if room.ID != roomID {
			continue
		}
		for _, cam := range room.Cameras {
			if cam.ID == cameraID {
				return cam, true
			}
		}
	}
	return models.Camera{}, false
}

// Behavior returns a snapshot copy of the subject's record. Unknown subjects
// report ok=false with an empty record.
func (s *Store) Behavior(subjectID string) (models.SubjectBehavior, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	behavior, ok := s.state.Behaviors[subjectID]
	if !ok {
		return models.SubjectBehavior{Events: []models.BehaviorEvent{}}, false
	}
	events := make([]models.BehaviorEvent, len(behavior.Events))
	copy(events, behavior.Events)
	return models.SubjectBehavior{Count: behavior.Count, Events: events}, true
}

// NextRoomID returns max(existing room ids)+1 over the current snapshot.
func (s *Store) NextRoomID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max uint
	for _, room := range s.state.Rooms {
		if room.ID > max {
			max = room.ID
		}
	}
	return max + 1
}

// NextCameraID returns max(existing camera ids)+1 across all rooms. Camera
// ids are global, never per-room.
func (s *Store) NextCameraID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max uint
	for _, room := range s.state.Rooms {
		for _, cam := range room.Cameras {
			if cam.ID > max {
				max = cam.ID
			}
		}
	}
	return max + 1
}

// Subscribe registers a change listener. The returned channel is buffered;
// events are dropped rather than blocking a dispatch when the subscriber
// falls behind. The second return value unsubscribes.
func (s *Store) Subscribe() (<-chan ChangeEvent, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan ChangeEvent, 16)
	s.subs[id] = ch

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

func (s *Store) notify(change ChangeEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

func copyRoom(room models.Room) models.Room {
	cameras := make([]models.Camera, len(room.Cameras))
	copy(cameras, room.Cameras)
	room.Cameras = cameras
	return room
}
