package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tutorhive/models"
	"tutorhive/services/schedule"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the weekly availability editor over HTTP.
type AvailabilityHandler struct {
	Service schedule.ScheduleService
}

func NewAvailabilityHandler(svc schedule.ScheduleService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// tutorIDFromContext retrieves the tutor id set by JWTAuthTutorMiddleware.
func tutorIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("tutorID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tutor not authenticated"})
		return "", false
	}
	tutorID, ok := v.(string)
	if !ok || tutorID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid tutor ID in context"})
		return "", false
	}
	return tutorID, true
}

// respondScheduleError maps engine refusals to HTTP statuses.
func respondScheduleError(c *gin.Context, err error) {
	switch {
	case schedule.IsCode(err, "draftNotFound"):
		utils.JSONError(c, http.StatusNotFound, "Draft not found", err.Error())
	case schedule.IsCode(err, "bookedConflict"):
		utils.JSONError(c, http.StatusConflict, "Booked ranges cannot be overwritten", err.Error())
	case schedule.IsCode(err, "unknownPreset"):
		utils.JSONError(c, http.StatusBadRequest, "Unknown preset", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Schedule operation failed", err.Error())
	}
}

// LoadWeekHandler opens an edit draft for the week containing :weekStart.
func (h *AvailabilityHandler) LoadWeekHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	weekStart, err := time.Parse("2006-01-02", c.Param("weekStart"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid week start date", "expected YYYY-MM-DD")
		return
	}

	draft, err := h.Service.LoadWeek(c.Request.Context(), tutorID, weekStart)
	if err != nil {
		utils.GetLogger().Error("Failed to load week", zap.String("tutorID", tutorID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetDraftHandler returns the current state of an edit draft.
func (h *AvailabilityHandler) GetDraftHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	draft, err := h.Service.GetDraft(c.Request.Context(), tutorID, c.Param("draftID"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *AvailabilityHandler) ToggleDayHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	draft, err := h.Service.ToggleDay(c.Request.Context(), tutorID, c.Param("draftID"), c.Param("date"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *AvailabilityHandler) AddRangeHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	draft, err := h.Service.AddRange(c.Request.Context(), tutorID, c.Param("draftID"), c.Param("date"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *AvailabilityHandler) UpdateRangeHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	rangeID, err := strconv.Atoi(c.Param("rangeID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid range ID", "expected numeric range id")
		return
	}

	var body struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if body.Field != schedule.FieldStartTime && body.Field != schedule.FieldEndTime {
		utils.JSONError(c, http.StatusBadRequest, "Invalid field", "field must be startTime or endTime")
		return
	}

	draft, err := h.Service.UpdateRange(c.Request.Context(), tutorID, c.Param("draftID"), c.Param("date"), rangeID, body.Field, body.Value)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *AvailabilityHandler) RemoveRangeHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	rangeID, err := strconv.Atoi(c.Param("rangeID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid range ID", "expected numeric range id")
		return
	}
	draft, err := h.Service.RemoveRange(c.Request.Context(), tutorID, c.Param("draftID"), c.Param("date"), rangeID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// CopyDayHandler replicates one day across the whole week. Destructive, so
// the client must send confirm: true after prompting the tutor.
func (h *AvailabilityHandler) CopyDayHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	var body struct {
		SourceDate string `json:"sourceDate" binding:"required"`
		Confirm    bool   `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if !body.Confirm {
		utils.JSONError(c, http.StatusBadRequest, "Confirmation required", "copy-to-all overwrites every other day; set confirm to true")
		return
	}

	draft, err := h.Service.CopyDayToAll(c.Request.Context(), tutorID, c.Param("draftID"), body.SourceDate)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *AvailabilityHandler) ApplyPresetHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	var body struct {
		Preset string `json:"preset" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	draft, skipped, err := h.Service.ApplyPreset(c.Request.Context(), tutorID, c.Param("draftID"), models.Preset(body.Preset))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	resp := gin.H{"draft": draft}
	if len(skipped) > 0 {
		resp["skippedDays"] = skipped
		resp["message"] = "Days with booked ranges were left unchanged"
	}
	c.JSON(http.StatusOK, resp)
}

// SaveWeekHandler persists the whole week. On failure the draft stays intact
// so the tutor can retry without re-entering edits.
func (h *AvailabilityHandler) SaveWeekHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	saved, err := h.Service.SaveWeek(c.Request.Context(), tutorID, c.Param("draftID"))
	if err != nil {
		if schedule.IsCode(err, "draftNotFound") {
			respondScheduleError(c, err)
			return
		}
		utils.GetLogger().Error("Failed to save week", zap.String("tutorID", tutorID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to save availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Weekly availability saved",
		"weekStartDate": saved.WeekStartDate,
		"slotCount":     len(saved.Slots),
	})
}

func (h *AvailabilityHandler) DiscardDraftHandler(c *gin.Context) {
	tutorID, ok := tutorIDFromContext(c)
	if !ok {
		return
	}
	if err := h.Service.DiscardDraft(c.Request.Context(), tutorID, c.Param("draftID")); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}
