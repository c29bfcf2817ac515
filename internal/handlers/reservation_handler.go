package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/dto"
	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/httpresp"
	"github.com/bistro-systems/table-reserve/internal/middleware"
	ucReservation "github.com/bistro-systems/table-reserve/internal/usecase/reservation"
)

type ReservationHandler struct {
	createUC    *ucReservation.CreateReservation
	cancelUC    *ucReservation.CancelReservation
	availableUC *ucReservation.FindAvailableTables
	mineUC      *ucReservation.GetMyReservation
	listAllUC   *ucReservation.ListAllReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	availableUC *ucReservation.FindAvailableTables,
	mineUC *ucReservation.GetMyReservation,
	listAllUC *ucReservation.ListAllReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:    createUC,
		cancelUC:    cancelUC,
		availableUC: availableUC,
		mineUC:      mineUC,
		listAllUC:   listAllUC,
	}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	TableNumber int    `json:"table_number" binding:"required,gt=0"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time"`
}

// --------- Handlers ---------

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseLocalTime(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "start_time must look like 2006-01-02T15:04:05")
		return
	}

	var end time.Time
	if req.EndTime != "" {
		end, err = parseLocalTime(req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time_format", "end_time must look like 2006-01-02T15:04:05")
			return
		}
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Email:       middleware.CallerEmail(c),
		TableNumber: req.TableNumber,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewReservationView(res))
}

func (h *ReservationHandler) Available(c *gin.Context) {
	start, err := parseLocalTime(c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time_format", "start must look like 2006-01-02T15:04:05")
		return
	}

	minutes := domain.DefaultDurationMinutes
	if raw := c.Query("minutes"); raw != "" {
		minutes, err = strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_minutes", "minutes must be an integer")
			return
		}
	}

	tables, err := h.availableUC.Execute(c.Request.Context(), start, minutes)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.NewTableViews(tables))
}

func (h *ReservationHandler) Mine(c *gin.Context) {
	res, err := h.mineUC.Execute(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if res == nil {
		c.Status(http.StatusNoContent)
		return
	}

	httpresp.OK(c, dto.NewReservationView(res))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, httperr.CodeReservationNotFound, "reservation does not exist")
		return
	}

	err = h.cancelUC.Execute(
		c.Request.Context(),
		middleware.CallerEmail(c),
		middleware.CallerRole(c),
		uint(id),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) ListAll(c *gin.Context) {
	reservations, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.NewReservationViews(reservations))
}

// Reservation times are local wall-clock values without a zone designator.
func parseLocalTime(raw string) (time.Time, error) {
	return time.ParseInLocation(domain.TimeLayout, raw, time.Local)
}
