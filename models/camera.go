package models

type CameraStatus string

const (
	CameraOnline    CameraStatus = "Online"
	CameraOffline   CameraStatus = "Offline"
	CameraRecording CameraStatus = "Recording"
	CameraError     CameraStatus = "Error"
)

// Camera is a monitored video source belonging to exactly one room.
// IDs are globally unique integers assigned as max(existing)+1.
type Camera struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Status    CameraStatus `json:"status"`
	StreamURL string       `json:"stream_url,omitempty"`
	Note      string       `json:"note,omitempty"`
}

func (s CameraStatus) Valid() bool {
	switch s {
	case CameraOnline, CameraOffline, CameraRecording, CameraError:
		return true
	}
	return false
}
