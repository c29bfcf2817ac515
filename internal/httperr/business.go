package httperr

import "errors"

// Stable error codes shared by use cases, handlers and tests. Each code maps
// to exactly one HTTP status so clients can render a tailored message.
const (
	CodeUserNotFound        = "user_not_found"
	CodeTableNotFound       = "table_not_found"
	CodeReservationNotFound = "reservation_not_found"

	CodeUserAlreadyReserved  = "user_already_reserved"
	CodeTableAlreadyReserved = "table_already_reserved"
	CodeEmailTaken           = "email_taken"
	CodeTableNumberTaken     = "table_number_taken"

	CodeEndBeforeStart   = "end_before_start"
	CodeStartInPast      = "start_in_past"
	CodeDurationTooShort = "duration_too_short"
	CodeDurationTooLong  = "duration_too_long"
	CodeEndsAfterClosing = "ends_after_closing"

	CodeNotReservationOwner = "not_reservation_owner"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a
// BusinessError.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
