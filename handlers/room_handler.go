package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"exam-command-center/be/models"
	"exam-command-center/be/store"

	"github.com/gin-gonic/gin"
)

const maxNameLength = 100

type RoomHandler struct {
	store *store.Store
}

func NewRoomHandler(st *store.Store) *RoomHandler {
	return &RoomHandler{store: st}
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
	Floor    int    `json:"floor"`
	Status   string `json:"status"`
	Note     string `json:"note"`
}

type DeleteRoomsRequest struct {
	RoomIDs []uint `json:"room_ids" binding:"required"`
}

// GetRooms serves the dashboard view. The optional floor query narrows the
// list to one floor, matching the dashboard's floor grouping.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms := h.store.Rooms()

	if floorParam := c.Query("floor"); floorParam != "" {
		floor, err := strconv.Atoi(floorParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor"})
			return
		}
		filtered := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if room.Floor == floor {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom serves the per-room camera grid. Unknown rooms render the Not
// Found view.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	room, ok := h.store.Room(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// CreateRoom validates input before any state mutation, generates the next
// room id and appends the room. The store itself never rejects.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a room name"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a room name"})
		return
	}
	if len(name) > maxNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Room name is too long"})
		return
	}
	if req.Capacity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity must not be negative"})
		return
	}

	status := models.RoomStatus(req.Status)
	if req.Status == "" {
		status = models.RoomActive
	}
	if status != models.RoomActive && status != models.RoomInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room status"})
		return
	}

	room := models.Room{
		ID:       h.store.NextRoomID(),
		Name:     name,
		Capacity: req.Capacity,
		Floor:    req.Floor,
		Status:   status,
		Note:     req.Note,
		Cameras:  []models.Camera{},
	}
	h.store.AddRoom(room)

	c.JSON(http.StatusCreated, room)
}

// DeleteRooms removes a batch of rooms by id. Ids not present are ignored.
func (h *RoomHandler) DeleteRooms(c *gin.Context) {
	var req DeleteRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.DeleteRooms(req.RoomIDs)

	c.JSON(http.StatusOK, gin.H{"message": "Rooms deleted successfully"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
