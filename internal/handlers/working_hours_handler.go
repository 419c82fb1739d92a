package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("professional_id = ?", proID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole weekly schedule. The setup flow edits the
// week as a unit, so replace-wholesale beats incremental patching.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		if !d.Active {
			continue
		}

		if !isValidDayConfig(d) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day_config"})
			return
		}
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		wh := models.WorkingHours{
			ProfessionalID: proID,
			Weekday:        d.Weekday,
			Active:         d.Active,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			BreakStart:     d.BreakStart,
			BreakEnd:       d.BreakEnd,
		}
		toCreate = append(toCreate, wh)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("professional_id = ?", proID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func isValidDayConfig(d WorkingDayConfig) bool {
	if !isValidClock(d.StartTime) || !isValidClock(d.EndTime) || d.StartTime >= d.EndTime {
		return false
	}

	if d.BreakStart == "" && d.BreakEnd == "" {
		return true
	}

	// "15:04" strings compare lexicographically in time order
	return isValidClock(d.BreakStart) && isValidClock(d.BreakEnd) &&
		d.StartTime <= d.BreakStart && d.BreakStart < d.BreakEnd && d.BreakEnd <= d.EndTime
}
