package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bistro-systems/table-reserve/internal/httperr"
)

var businessStatus = map[string]int{
	httperr.CodeUserNotFound:        http.StatusNotFound,
	httperr.CodeTableNotFound:       http.StatusNotFound,
	httperr.CodeReservationNotFound: http.StatusNotFound,

	httperr.CodeUserAlreadyReserved:  http.StatusConflict,
	httperr.CodeTableAlreadyReserved: http.StatusConflict,
	httperr.CodeEmailTaken:           http.StatusConflict,
	httperr.CodeTableNumberTaken:     http.StatusConflict,

	httperr.CodeEndBeforeStart:   http.StatusBadRequest,
	httperr.CodeStartInPast:      http.StatusBadRequest,
	httperr.CodeDurationTooShort: http.StatusBadRequest,
	httperr.CodeDurationTooLong:  http.StatusBadRequest,
	httperr.CodeEndsAfterClosing: http.StatusBadRequest,

	httperr.CodeNotReservationOwner: http.StatusForbidden,
}

var businessMessage = map[string]string{
	httperr.CodeUserNotFound:        "no account exists for this identity",
	httperr.CodeTableNotFound:       "no table with this number exists",
	httperr.CodeReservationNotFound: "reservation does not exist",

	httperr.CodeUserAlreadyReserved:  "you already have an active reservation",
	httperr.CodeTableAlreadyReserved: "this table is already reserved for the requested time",
	httperr.CodeEmailTaken:           "an account with this email already exists",
	httperr.CodeTableNumberTaken:     "a table with this number already exists",

	httperr.CodeEndBeforeStart:   "end time must be after start time",
	httperr.CodeStartInPast:      "start time must not be in the past",
	httperr.CodeDurationTooShort: "reservation must last at least 30 minutes",
	httperr.CodeDurationTooLong:  "reservation must not last more than 300 minutes",
	httperr.CodeEndsAfterClosing: "reservation must end by 22:00",

	httperr.CodeNotReservationOwner: "only the owner or an admin may cancel this reservation",
}

// isUniqueViolation reports whether err comes from a unique index rejecting
// an insert. Not every driver translates to gorm.ErrDuplicatedKey, so the
// raw messages of postgres ("duplicate key value violates unique constraint")
// and sqlite ("UNIQUE constraint failed") are matched as well.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// writeError maps a use-case error onto the wire. Unknown errors become a
// generic internal_error so nothing leaks to the client.
func writeError(c *gin.Context, err error) {
	code := httperr.CodeOf(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "unexpected error")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	httperr.Write(c, status, code, businessMessage[code])
}
