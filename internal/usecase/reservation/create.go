package reservation

import (
	"context"
	"time"

	"github.com/bistro-systems/table-reserve/internal/audit"
	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type CreateReservationInput struct {
	Email string

	TableNumber int
	StartTime   time.Time

	// Zero EndTime means "server default": start + 120 minutes.
	EndTime time.Time
}

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		Now:   time.Now,
	}
}

// Execute runs the booking checks in a fixed order so the surfaced error is
// deterministic: user, user's active reservation, table, time window, then
// the atomic overlap-check-and-insert.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	user, err := uc.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	existing, err := uc.repo.GetReservationByUserEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserAlreadyReserved)
	}

	table, err := uc.repo.GetTableByNumber(ctx, in.TableNumber)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeTableNotFound)
	}

	end := in.EndTime
	if end.IsZero() {
		end = in.StartTime.Add(domain.DefaultDurationMinutes * time.Minute)
	}

	if err := domain.ValidateWindow(in.StartTime, end, uc.Now()); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		UserID:    user.ID,
		TableID:   table.ID,
		StartTime: in.StartTime,
		EndTime:   end,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	res.User = *user
	res.Table = *table

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
