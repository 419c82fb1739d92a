package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type PriceOverrideConfig struct {
	ServiceID   uint     `json:"service_id" binding:"required"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      bool     `json:"active"`
}

type PriceOverridesUpdateRequest struct {
	Overrides []PriceOverrideConfig `json:"overrides" binding:"required"`
}

// --------- Catalog (public) ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("active = ?", true)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("popular DESC, name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// --------- Price overrides (professional) ---------

func (h *ServiceHandler) ListOverrides(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	var overrides []models.ProfessionalPrice
	if err := h.db.
		Where("professional_id = ?", proID).
		Order("service_id ASC").
		Find(&overrides).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_overrides"})
		return
	}

	c.JSON(http.StatusOK, overrides)
}

// UpdateOverrides replaces the professional's full override set, keeping
// the at-most-one-active-per-service invariant trivially true.
func (h *ServiceHandler) UpdateOverrides(c *gin.Context) {
	proID := c.MustGet(middleware.ContextUserID).(uint)

	var req PriceOverridesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[uint]bool{}
	for _, o := range req.Overrides {
		if seen[o.ServiceID] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_service"})
			return
		}
		seen[o.ServiceID] = true

		if o.Price != nil && *o.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
			return
		}
		if o.DurationMin != nil && *o.DurationMin <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
			return
		}
	}

	var toCreate []models.ProfessionalPrice
	for _, o := range req.Overrides {
		toCreate = append(toCreate, models.ProfessionalPrice{
			ProfessionalID: proID,
			ServiceID:      o.ServiceID,
			Price:          o.Price,
			DurationMin:    o.DurationMin,
			Active:         o.Active,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("professional_id = ?", proID).Delete(&models.ProfessionalPrice{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_overrides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
