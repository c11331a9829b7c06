package store

import "exam-command-center/be/models"

// SeedState returns the demo dataset the dashboard ships with: five exam
// rooms across two floors, eight cameras, and a handful of pre-recorded
// behavior counts so every alert level is represented out of the box.
func SeedState() State {
	return State{
		Rooms: []models.Room{
			{
				ID: 1, Name: "Room 101", Capacity: 80, Floor: 1, Status: models.RoomActive,
				Note: "Main examination hall - capacity 80 students",
				Cameras: []models.Camera{
					{ID: 1, Name: "CAM 101-1", Status: models.CameraOnline, StreamURL: "rtsp://camera1.example.com/stream", Note: "Front view camera for Room 101"},
					{ID: 2, Name: "CAM 101-2", Status: models.CameraOnline, StreamURL: "rtsp://camera2.example.com/stream", Note: "Back view camera for Room 101"},
				},
			},
			{
				ID: 2, Name: "Room 102", Capacity: 80, Floor: 1, Status: models.RoomActive,
				Note: "Secondary examination room",
				Cameras: []models.Camera{
					{ID: 3, Name: "CAM 102-1", Status: models.CameraRecording, StreamURL: "rtsp://camera3.example.com/stream", Note: "Primary camera for Room 102"},
					{ID: 4, Name: "CAM 102-2", Status: models.CameraOffline, StreamURL: "rtsp://camera4.example.com/stream", Note: "Secondary camera for Room 102 - maintenance required"},
				},
			},
			{
				ID: 3, Name: "Room 103", Capacity: 80, Floor: 1, Status: models.RoomActive,
				Note: "Computer lab for digital exams",
				Cameras: []models.Camera{
					{ID: 5, Name: "CAM 103-1", Status: models.CameraOnline, StreamURL: "rtsp://camera5.example.com/stream"},
					{ID: 6, Name: "CAM 103-2", Status: models.CameraOnline, StreamURL: "rtsp://camera6.example.com/stream"},
				},
			},
			{
				ID: 4, Name: "Room 201", Capacity: 80, Floor: 2, Status: models.RoomActive,
				Note: "Upper floor examination room",
				Cameras: []models.Camera{
					{ID: 7, Name: "CAM 201-1", Status: models.CameraError, StreamURL: "rtsp://camera7.example.com/stream", Note: "Connection issues - needs IT support"},
				},
			},
			{
				ID: 5, Name: "Room 202", Capacity: 80, Floor: 2, Status: models.RoomActive,
				Note: "Second upper floor examination room",
				Cameras: []models.Camera{
					{ID: 8, Name: "CAM 201-2", Status: models.CameraOnline, StreamURL: "rtsp://camera8.example.com/stream"},
				},
			},
		},
		Behaviors: map[string]models.SubjectBehavior{
			"student-001": {Count: 2, Events: []models.BehaviorEvent{}},
			"student-002": {Count: 6, Events: []models.BehaviorEvent{}},
			"student-003": {Count: 1, Events: []models.BehaviorEvent{}},
			"student-004": {Count: 4, Events: []models.BehaviorEvent{}},
			"student-005": {Count: 0, Events: []models.BehaviorEvent{}},
			"student-006": {Count: 7, Events: []models.BehaviorEvent{}},
			"student-007": {Count: 3, Events: []models.BehaviorEvent{}},
			"student-008": {Count: 0, Events: []models.BehaviorEvent{}},
		},
	}
}
