package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"exam-command-center/be/models"
	"exam-command-center/be/services"
	"exam-command-center/be/store"

	"github.com/gin-gonic/gin"
)

type CameraHandler struct {
	store    *store.Store
	registry *services.RegistryService
}

func NewCameraHandler(st *store.Store, registry *services.RegistryService) *CameraHandler {
	return &CameraHandler{
		store:    st,
		registry: registry,
	}
}

type CreateCameraRequest struct {
	Name      string `json:"name" binding:"required"`
	Status    string `json:"status"`
	StreamURL string `json:"stream_url"`
	Note      string `json:"note"`
}

type DeleteCamerasRequest struct {
	CameraIDs []uint `json:"camera_ids" binding:"required"`
}

// CreateCamera adds a camera to a room. The target room is resolved before
// the store is touched: the store silently ignores unknown rooms, so the
// "Selected room not found" rejection has to happen here. With an external
// registry configured, creation goes through the registry first and the
// returned camera is forwarded into the store; on failure local state stays
// untouched.
func (h *CameraHandler) CreateCamera(c *gin.Context) {
	roomID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req CreateCameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a camera name"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a camera name"})
		return
	}
	if len(name) > maxNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Camera name is too long"})
		return
	}

	status := models.CameraStatus(req.Status)
	if req.Status == "" {
		status = models.CameraOffline
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camera status"})
		return
	}

	if _, ok := h.store.Room(roomID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Selected room not found"})
		return
	}

	var camera models.Camera
	if h.registry != nil && h.registry.Enabled() {
		created, err := h.registry.CreateCamera(name, req.Note)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		camera = *created
		if camera.ID == 0 {
			camera.ID = h.store.NextCameraID()
		}
	} else {
		camera = models.Camera{
			ID:        h.store.NextCameraID(),
			Name:      name,
			Status:    status,
			StreamURL: req.StreamURL,
			Note:      req.Note,
		}
	}

	h.store.AddCamera(roomID, camera)

	c.JSON(http.StatusCreated, camera)
}

// DeleteCameras removes a batch of cameras from one room. Cameras in other
// rooms are never touched, whatever their ids.
func (h *CameraHandler) DeleteCameras(c *gin.Context) {
	roomID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req DeleteCamerasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.store.Room(roomID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	h.store.DeleteCameras(roomID, req.CameraIDs)

	c.JSON(http.StatusOK, gin.H{"message": "Cameras deleted successfully"})
}

// GetCamera serves the live-view detail for one camera. The behavior subject
// defaults to the camera itself; a subject_id query switches the panel to a
// specific student.
func (h *CameraHandler) GetCamera(c *gin.Context) {
	roomID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}
	cameraID, err := parseID(c.Param("cameraId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camera ID"})
		return
	}

	room, ok := h.store.Room(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}
	camera, ok := h.store.Camera(roomID, cameraID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	subjectID := c.Query("subject_id")
	if subjectID == "" {
		subjectID = fmt.Sprintf("camera-%d", camera.ID)
	}
	behavior, _ := h.store.Behavior(subjectID)

	c.JSON(http.StatusOK, gin.H{
		"camera":      camera,
		"room_id":     room.ID,
		"room_name":   room.Name,
		"subject_id":  subjectID,
		"behavior":    behavior,
		"alert_level": h.store.AlertLevel(subjectID),
	})
}
