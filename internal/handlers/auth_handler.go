package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/middleware"
	"github.com/bistro-systems/table-reserve/internal/models"
	"github.com/bistro-systems/table-reserve/internal/token"
	"github.com/bistro-systems/table-reserve/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *token.Service
}

func NewAuthHandler(db *gorm.DB, tokens *token.Service) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailShapeValid(email) {
		httperr.BadRequest(c, "invalid_email", "email address is not valid")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "could not check email")
		return
	}
	if count > 0 {
		httperr.Conflict(c, httperr.CodeEmailTaken, "an account with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not process password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The pre-check above races with concurrent registrations; the unique
		// index on users.email is the backstop.
		if isUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeEmailTaken, "an account with this email already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "could not create account")
		return
	}

	signed, err := h.tokens.Issue(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not issue token")
		return
	}

	h.setTokenCookie(c, signed)
	c.JSON(http.StatusCreated, gin.H{
		"user":  userView(&user),
		"token": signed,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "email or password is incorrect")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "email or password is incorrect")
		return
	}

	signed, err := h.tokens.Issue(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not issue token")
		return
	}

	h.setTokenCookie(c, signed)
	c.JSON(http.StatusOK, gin.H{
		"user":  userView(&user),
		"token": signed,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, signed string) {
	c.SetCookie(
		middleware.CookieName,
		signed,
		int(h.tokens.TTL().Seconds()),
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}
}
