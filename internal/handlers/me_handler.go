package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/middleware"
	"github.com/groomly/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	if actor.Role == domain.RoleProfessional {
		var pro models.Professional
		if err := h.db.First(&pro, actor.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":       pro.ID,
				"name":     pro.Name,
				"email":    pro.Email,
				"phone":    pro.Phone,
				"role":     actor.Role,
				"category": pro.Category,
				"bio":      pro.Bio,
			},
		})
		return
	}

	var client models.Client
	if err := h.db.First(&client, actor.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"email": client.Email,
			"phone": client.Phone,
			"role":  actor.Role,
		},
	})
}
