package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// List is the public directory clients browse before booking.
func (h *ProfessionalHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("active = ?", true)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(bio) LIKE ?", like, like)
	}

	var pros []models.Professional
	if err := q.
		Order("name ASC").
		Find(&pros).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	out := make([]gin.H, 0, len(pros))
	for _, p := range pros {
		out = append(out, gin.H{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"bio":      p.Bio,
		})
	}

	c.JSON(http.StatusOK, out)
}
