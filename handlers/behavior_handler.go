package handlers

import (
	"net/http"

	"exam-command-center/be/store"

	"github.com/gin-gonic/gin"
)

type BehaviorHandler struct {
	store *store.Store
}

func NewBehaviorHandler(st *store.Store) *BehaviorHandler {
	return &BehaviorHandler{store: st}
}

type LogSuspiciousRequest struct {
	Description string `json:"description"`
}

// LogSuspicious flags suspicious behavior for a subject: count goes up by
// one, an event lands in the log, and the alert level follows from the new
// count. First use creates the subject's record.
func (h *BehaviorHandler) LogSuspicious(c *gin.Context) {
	subjectID := c.Param("id")

	var req LogSuspiciousRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	h.store.LogSuspiciousBehavior(subjectID, req.Description)

	behavior, _ := h.store.Behavior(subjectID)
	c.JSON(http.StatusCreated, gin.H{
		"subject_id":  subjectID,
		"count":       behavior.Count,
		"alert_level": h.store.AlertLevel(subjectID),
	})
}

// StartRecording appends a recording event. The suspicious count, and with
// it the alert level, never changes here.
func (h *BehaviorHandler) StartRecording(c *gin.Context) {
	subjectID := c.Param("id")

	h.store.RecordBehavior(subjectID)

	behavior, _ := h.store.Behavior(subjectID)
	c.JSON(http.StatusCreated, gin.H{
		"subject_id":  subjectID,
		"count":       behavior.Count,
		"alert_level": h.store.AlertLevel(subjectID),
	})
}

// GetBehavior returns the subject's record with its derived alert level.
// Unknown subjects get the empty record and level none, not a 404; the panel
// renders the same either way.
func (h *BehaviorHandler) GetBehavior(c *gin.Context) {
	subjectID := c.Param("id")

	behavior, _ := h.store.Behavior(subjectID)

	c.JSON(http.StatusOK, gin.H{
		"subject_id":  subjectID,
		"count":       behavior.Count,
		"events":      behavior.Events,
		"alert_level": h.store.AlertLevel(subjectID),
	})
}
