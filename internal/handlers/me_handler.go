package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/middleware"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	if err := h.db.Where("email = ?", middleware.CallerEmail(c)).First(&user).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "no account exists for this identity")
		return
	}

	c.JSON(http.StatusOK, userView(&user))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", middleware.CallerEmail(c)).First(&user).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "no account exists for this identity")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not process password")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "could not update password")
		return
	}

	c.Status(http.StatusNoContent)
}
