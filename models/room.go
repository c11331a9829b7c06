package models

type RoomStatus string

const (
	RoomActive   RoomStatus = "active"
	RoomInactive RoomStatus = "inactive"
)

// Room is a monitored examination location. It owns its cameras: deleting a
// room removes the cameras with it.
type Room struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Capacity int        `json:"capacity"`
	Floor    int        `json:"floor,omitempty"`
	Status   RoomStatus `json:"status"`
	Note     string     `json:"note,omitempty"`
	Cameras  []Camera   `json:"cameras"`
}
