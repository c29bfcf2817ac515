package reservation

import (
	"context"
	"time"

	"github.com/bistro-systems/table-reserve/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// -------- Table --------
	GetTableByNumber(
		ctx context.Context,
		number int,
	) (*models.Table, error)

	ListTables(
		ctx context.Context,
	) ([]models.Table, error)

	// ListAvailableTables returns tables with no reservation overlapping
	// [start, end) under the half-open Overlaps predicate.
	ListAvailableTables(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Table, error)

	// -------- Reservation --------

	// GetReservationByUserEmail returns (nil, nil) when the user holds no
	// reservation.
	GetReservationByUserEmail(
		ctx context.Context,
		email string,
	) (*models.Reservation, error)

	// CreateReservation re-runs the table overlap check and inserts the row
	// inside one transaction; on overlap it fails with
	// httperr.CodeTableAlreadyReserved and writes nothing.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error

	ListReservations(
		ctx context.Context,
	) ([]models.Reservation, error)
}
