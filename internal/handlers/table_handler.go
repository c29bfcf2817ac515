package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/audit"
	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/httpresp"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type TableHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTableHandler(db *gorm.DB, audit *audit.Dispatcher) *TableHandler {
	return &TableHandler{db: db, audit: audit}
}

func (h *TableHandler) List(c *gin.Context) {
	var tables []models.Table
	if err := h.db.Order("number ASC").Find(&tables).Error; err != nil {
		httperr.Internal(c, "internal_error", "could not list tables")
		return
	}

	httpresp.List(c, tables)
}

type CreateTableRequest struct {
	Number int `json:"number" binding:"required,gt=0"`
	Seats  int `json:"seats" binding:"required,gt=0"`
}

func (h *TableHandler) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.Table{}).Where("number = ?", req.Number).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "could not check table number")
		return
	}
	if count > 0 {
		httperr.Conflict(c, httperr.CodeTableNumberTaken, "a table with this number already exists")
		return
	}

	table := models.Table{
		Number: req.Number,
		Seats:  req.Seats,
	}
	if err := h.db.Create(&table).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeTableNumberTaken, "a table with this number already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_table", "could not create table")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "table_created",
		Entity:   "table",
		EntityID: &table.ID,
	})

	c.JSON(http.StatusCreated, table)
}
