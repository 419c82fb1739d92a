package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/config"
	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/models"
	"github.com/groomly/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=client professional"`

	// Professional-only profile fields
	Category string `json:"category"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=client professional"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailFormatValid(email) || !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O e-mail informado não parece ser válido.",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var id uint
	switch req.Role {
	case domain.RoleProfessional:
		pro := models.Professional{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Category:     req.Category,
			Bio:          req.Bio,
			Active:       true,
		}
		if err := h.db.Create(&pro).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}
		id = pro.ID

	default:
		client := models.Client{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
		}
		if err := h.db.Create(&client).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}
		id = client.ID
	}

	token, err := h.generateToken(id, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    id,
			"name":  req.Name,
			"email": email,
			"phone": req.Phone,
			"role":  req.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var (
		id   uint
		name string
		hash string
	)

	switch req.Role {
	case domain.RoleProfessional:
		var pro models.Professional
		if err := h.db.Where("email = ?", email).First(&pro).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		id, name, hash = pro.ID, pro.Name, pro.PasswordHash

	default:
		var client models.Client
		if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		id, name, hash = client.ID, client.Name, client.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(id, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    id,
			"name":  name,
			"email": email,
			"role":  req.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
