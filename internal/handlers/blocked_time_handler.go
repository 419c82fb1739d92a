package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/models"
)

type BlockedTimeHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewBlockedTimeHandler(db *gorm.DB, loc *time.Location) *BlockedTimeHandler {
	return &BlockedTimeHandler{db: db, loc: loc}
}

type CreateBlockedTimeRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("professional_id = ?", proID)

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var blocks []models.BlockedTime
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_times"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := parseDate(h.loc, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	if !isValidClock(req.StartTime) || !isValidClock(req.EndTime) || req.StartTime >= req.EndTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_range"})
		return
	}

	block := models.BlockedTime{
		ProfessionalID: proID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_time"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	result := h.db.
		Where("id = ? AND professional_id = ?", c.Param("id"), proID).
		Delete(&models.BlockedTime{})

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_time"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "blocked_time_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
