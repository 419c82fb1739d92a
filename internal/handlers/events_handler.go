package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type EventsHandler struct {
	db *gorm.DB
}

func NewEventsHandler(db *gorm.DB) *EventsHandler {
	return &EventsHandler{db: db}
}

// List shows a professional the transition trail of their agenda.
func (h *EventsHandler) List(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	action := c.Query("action")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.
		Model(&models.DomainEvent{}).
		Where("professional_id = ?", proID)

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "events_count_failed", "Erro ao contar eventos.")
		return
	}

	var events []models.DomainEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error; err != nil {

		httperr.Internal(c, "events_list_failed", "Erro ao listar eventos.")
		return
	}

	c.JSON(200, gin.H{
		"page":   page,
		"limit":  limit,
		"total":  total,
		"events": events,
	})
}
